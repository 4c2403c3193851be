// Package roster derives who belongs to a business and in what role.
//
// Everything here is a pure function over explicit inputs: no store access,
// no clock, no implicit "current business". The service layer loads the
// facts and calls in.
package roster
