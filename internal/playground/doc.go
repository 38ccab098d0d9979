// Package playground is the demo application behind `toastkit serve`: a
// single page of producer controls exercising every toast variant, with the
// notification stacks mounted alongside.
package playground
