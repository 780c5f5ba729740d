package models

import "fmt"

const ClientTable = "client"

// Client only carries its name so far; its CRUD contract is not implemented.
type Client struct {
	BaseModel
	Name string
}

var _ Record = (*Client)(nil)

func NewClient(name string) *Client {
	return &Client{
		BaseModel: NewBaseModel(ClientTable),
		Name:      name,
	}
}

func (c *Client) String() string {
	return fmt.Sprintf("<Client(table_name=%q; id=%d; name=%q)>", c.TableName(), c.ID(), c.Name)
}
