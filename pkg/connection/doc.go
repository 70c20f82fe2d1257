// Package connection reads the settings of an Auth0 database connection and
// turns them into configured field validators.
//
// Settings are read from JSON, as served by the Auth0 client configuration
// endpoint, or from YAML:
//
//	name: Username-Password-Authentication
//	requires_username: true
//	passwordPolicy: good
//	validation:
//	  username:
//	    min: 3
//	    max: 15
//
// Decoded settings are checked with go-playground/validator before use.
// Database.Validators then builds the validator set and MessageContext the
// matching message.Context.
package connection
