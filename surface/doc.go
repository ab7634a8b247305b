// Package surface holds a sampled square height field together with its
// grid spacing and the two normalisation primitives used after synthesis:
// rescaling to a target property and shifting to zero mean.
//
// A Surface owns its samples. Constructors copy the input and accessors
// return copies, so only the normalisation methods mutate the field.
package surface
