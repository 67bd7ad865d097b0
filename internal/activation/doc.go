// Package activation defines the provider-neutral data model for activation
// functions: canonical identities, provider-native tokens, parameter bags,
// batch orientations and the backend capability interfaces.
//
// Nothing in this package computes an activation. Evaluation is delegated
// to a Backend, selected by Provider, that turns a Token into a Function.
package activation
