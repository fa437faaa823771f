package geom

import "fmt"

// String renders the components separated by tabs, for logs and debugging.
func (v Vec) String() string {
	return fmt.Sprintf("%v\t%v\t%v", v[0], v[1], v[2])
}
