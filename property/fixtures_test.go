package property

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Address struct {
	Street string
	City   string
}

type Customer struct {
	Name    string
	Address *Address
	Tags    map[string]string
	email   string
}

func (c *Customer) Email() string { return c.email }

func (c *Customer) SetEmail(v string) error {
	if !strings.Contains(v, "@") {
		return errors.New("invalid email")
	}

	c.email = v

	return nil
}

func (c *Customer) Score() (int, error) { return 0, errors.New("not rated") }

type Order struct {
	ID       uuid.UUID
	Customer *Customer
	Billing  Address
	Total    float64
	Quantity int
	Extra    map[string]any
	Meta     any
	status   string
}

func (o *Order) Status() string { return o.status }

// Invoice exposes its address only through a getter returning a copy.
type Invoice struct {
	addr Address
}

func (i *Invoice) Address() Address { return i.addr }

func (i *Invoice) SetAddress(a Address) { i.addr = a }

// Ledger has a read-only pointer property.
type Ledger struct {
	owner *Customer
}

func (l *Ledger) Owner() *Customer { return l.owner }

type Session struct {
	Token string
	User  string
}

func (s *Session) Init() error {
	s.Token = "fresh"
	return nil
}

type Client struct {
	Session *Session
}

type Party struct {
	Customer *Customer
}

// Shipment reaches its customer through an embedded pointer.
type Shipment struct {
	*Party
	Weight int
}
