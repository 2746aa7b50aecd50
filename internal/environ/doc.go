// Package environ builds the environment Bloom runs with.
//
// Bloom's bundled Gecko engine lives in <launcher>/Firefox and must be
// preloaded and on the library path. A wrapper that has already prepared all
// of this sets BLOOM_ENVIRONMENT_READY, and Build then passes the environment
// through untouched.
package environ
