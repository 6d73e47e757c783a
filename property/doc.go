// Package property reads and writes named properties of Go values.
//
// A property of a struct type is an exported field (promoted fields
// included), a getter/setter method pair such as Email/SetEmail, or a field
// renamed with the `prop:"alias"` struct tag. Every key of a map with a
// string key is a property as well. Names may be written the Go way ("Name")
// or the bean way ("name").
//
// Accessors and mutators come in two flavours. Typed ones are bound to an
// owner type when they are created, so a missing property is reported right
// away. Untyped ones resolve the property from the runtime type of every
// instance they are given. Dotted names such as "customer.address.city"
// produce graph accessors and mutators that walk the object graph hop by
// hop; graph mutators allocate missing intermediate objects on the way.
//
//	m, err := property.NewMutator(reflect.TypeFor[Order](), "customer.name", true, false)
//	if err != nil {
//		return err
//	}
//
//	err = m.Write(&order, "Alice") // order.Customer is allocated when nil
//
// Resolved property descriptors are memoized in a process-wide cache that is
// safe for concurrent use. Accessors and mutators are immutable once built.
package property
