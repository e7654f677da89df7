// Package figfile reads and writes figures.
//
// Two encodings are supported. The text form has a header line "N DIM"
// followed by N lines "p1, p2, p3; a1, a2, a3", where each angle is "x" or
// DIM space-separated rational coefficients. The YAML form declares the
// number of unknowns (DIM - 1) and a list of triangles:
//
//	unknowns: 0
//	triangles:
//	  - vertices: [1, 3, 2]
//	    angles: ["30", "20", "130"]
//
// Load picks the encoding from the file extension. Text errors carry the
// line number and wrap ErrSyntax or the angle/figure sentinel that caused
// them; YAML value errors wrap ErrInvalid.
package figfile
