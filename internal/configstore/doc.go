// Package configstore persists the remembered tool paths and preference flags
// in a TOML file under the user's configuration directory. The store is
// policy-free: callers decide when a record should be saved.
package configstore
