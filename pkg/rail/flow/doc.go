// Package flow builds lazy, reusable Railway-Oriented pipelines.
//
// Unlike chain, a Flow does not execute anything while it is assembled:
// Then/ThenTry/Map accumulate steps into a new Flow value and leave the
// original untouched, so partial pipelines can be shared and extended
// independently. Run executes the accumulated steps against an input,
// short-circuiting on the first failure. A Flow keeps no state between
// invocations; every Run is independent.
package flow
