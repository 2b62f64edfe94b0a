// Package schema describes collection record shapes for the query
// translation engine.
//
// A CollectionModel is built once per collection and is immutable
// afterwards: a lookup table from logical property name to descriptor,
// so property resolution during translation is a map access, not
// reflection.
//
//	model := schema.MustModel("hotels",
//	    schema.Property{Name: "HotelName", StorageName: "hotel_name", Type: schema.Of(schema.KindString)},
//	    schema.Property{Name: "Rating", Type: schema.NullableOf(schema.KindFloat64)},
//	    schema.Property{Name: "Tags", Type: schema.CollectionOf(schema.KindString), IsFilterable: true},
//	)
//
// Logical names are what predicates reference; storage names are what
// query artifacts carry. When they coincide, StorageName may be left
// empty and defaults to Name.
package schema
