// Package carrier holds the closed code tables published by the parcel carrier:
// product types, depo codes, additional service codes and package flags.
//
// The tables are an external contract. Values outside of them are rejected by
// the Validate methods so that a package can never be sent with a code the
// carrier would refuse.
package carrier
