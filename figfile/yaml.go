package figfile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/geopar/angle"
	"github.com/katalvlaran/geopar/figure"
)

// document is the YAML form of a figure:
//
//	unknowns: 1
//	triangles:
//	  - vertices: [1, 2, 3]
//	    angles: ["1 0", x, "0 60"]
type document struct {
	Unknowns  *int          `yaml:"unknowns" validate:"required,min=0,max=15"`
	Triangles []triangleDoc `yaml:"triangles" validate:"required,min=1,dive"`
}

type triangleDoc struct {
	Vertices []int    `yaml:"vertices,flow" validate:"len=3,dive,min=0"`
	Angles   []string `yaml:"angles,flow" validate:"len=3,dive,required"`
}

func (d *document) dim() int { return *d.Unknowns + 1 }

var docValidate *validator.Validate

func init() {
	docValidate = validator.New()
	docValidate.RegisterStructValidation(validateAngles, document{})
}

// validateAngles checks every angle text against the document dimension.
func validateAngles(sl validator.StructLevel) {
	doc := sl.Current().Interface().(document)
	if doc.Unknowns == nil || *doc.Unknowns < 0 || *doc.Unknowns > angle.MaxUnknowns {
		return
	}
	for i, t := range doc.Triangles {
		for j, s := range t.Angles {
			if _, err := angle.Parse(s, doc.dim()); err != nil {
				sl.ReportError(s, fmt.Sprintf("Triangles[%d].Angles[%d]", i, j), "Angles", "angle", s)
			}
		}
	}
}

// ReadYAML decodes one YAML document. Unknown keys are rejected; the
// dimension is unknowns + 1.
func ReadYAML(r io.Reader) (*figure.Mesh, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document: %w", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := docValidate.Struct(doc); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalid, describe(err))
	}

	specs := make([]figure.TriangleSpec, len(doc.Triangles))
	for i, t := range doc.Triangles {
		specs[i] = figure.TriangleSpec{
			A: t.Vertices[0], B: t.Vertices[1], C: t.Vertices[2],
			AngleA: t.Angles[0], AngleB: t.Angles[1], AngleC: t.Angles[2],
		}
	}

	return figure.Build(doc.dim(), specs)
}

// WriteYAML encodes m in the form read by ReadYAML.
func WriteYAML(w io.Writer, m *figure.Mesh) error {
	unknowns := max(m.Dim(), 1) - 1
	doc := document{Unknowns: &unknowns}
	for _, t := range m.Triangles() {
		vs, as := t.Vertices(), t.Angles()
		doc.Triangles = append(doc.Triangles, triangleDoc{
			Vertices: vs[:],
			Angles:   []string{as[0].Tokens(), as[1].Tokens(), as[2].Tokens()},
		})
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}

// describe flattens validator errors into "field: tag" pairs.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fmt.Sprintf("%s: %s", fe.Namespace(), fe.Tag())
	}

	return strings.Join(parts, "; ")
}
