package css

import (
	"encoding/json"

	"github.com/nathanhack/qecc/distance"
	mat "github.com/nathanhack/sparsemat"
)

//// For JSON marshalling
type code struct {
	Name string
	HX   mat.CSRMatrix
	HZ   mat.CSRMatrix
	D    *int `json:",omitempty"`
}

// MarshalJSON serializes the name, the stabilizer matrices and the distance
// (when known); derived fields are recomputed on load.
func (c *Code) MarshalJSON() ([]byte, error) {
	out := struct {
		Name string
		HX   mat.SparseMat
		HZ   mat.SparseMat
		D    *int `json:",omitempty"`
	}{
		Name: c.name,
		HX:   c.hx,
		HZ:   c.hz,
		D:    c.d,
	}
	return json.Marshal(out)
}

// UnmarshalJSON is needed because Code holds mat.SparseMat fields and
// requires special handling.
func (c *Code) UnmarshalJSON(bytes []byte) error {
	var cj code
	err := json.Unmarshal(bytes, &cj)
	if err != nil {
		return err
	}

	c.name = cj.Name
	if c.name == "" {
		c.name = defaultName
	}
	c.hx = &cj.HX
	c.hz = &cj.HZ
	c.d = cj.D
	c.DistanceOracle = distance.BruteForce
	return nil
}
