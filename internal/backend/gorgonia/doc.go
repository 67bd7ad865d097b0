// Package gorgonia implements the gorgonia activation provider.
//
// Tokens are the names of gorgonia's activation constructors ("Rectify",
// "LeakyRelu", "SoftMax", ...). Every evaluation builds a small expression
// graph around the batch, runs it on a tape machine and reads the result
// back; derivatives come from gorgonia's symbolic differentiation.
package gorgonia
