// Package normalisers holds the mappers that turn raw records from the
// hosted table service into domain entities. Each subpackage owns one
// record family; records covers every table the site reads.
package normalisers
