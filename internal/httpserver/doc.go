// Package httpserver wires the REST surface: routes, the bearer-token
// gate, the terminal error middleware, and the response envelope every
// endpoint shares.
package httpserver
