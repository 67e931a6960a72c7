// Package httpadapter exposes the site's data services as JSON over HTTP.
//
// Routes are mounted on a chi router. Failures are mapped to status codes
// without leaking upstream error text: lookups that match nothing are 404,
// invalid input is 400 and record service failures are 502.
package httpadapter
