package models

import "fmt"

const RouteTable = "route"

// Route only carries its name so far; its CRUD contract is not implemented.
type Route struct {
	BaseModel
	Name string
}

var _ Record = (*Route)(nil)

func NewRoute(name string) *Route {
	return &Route{
		BaseModel: NewBaseModel(RouteTable),
		Name:      name,
	}
}

func (r *Route) String() string {
	return fmt.Sprintf("<Route(table_name=%q; id=%d; name=%q)>", r.TableName(), r.ID(), r.Name)
}
