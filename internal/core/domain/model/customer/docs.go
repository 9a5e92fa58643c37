// Package customer contains the Customer entity: an account holder with
// contact details and a running balance charged by monthly billing.
package customer
