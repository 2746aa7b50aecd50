// Package launch resolves what to run: the launcher directory, the mono
// interpreter, the payload, and the argument vector.
//
// Context captures all of it once at startup so later stages never consult
// process globals. Interpreter precedence is:
//
//  1. /app/bin/mono inside the org.sil.Bloom flatpak (FLATPAK_ID)
//  2. /opt/mono5-sil/bin/mono when installed
//  3. /usr/bin/mono
package launch
