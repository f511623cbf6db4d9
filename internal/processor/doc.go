// Package processor builds the assistant's components from the loaded
// configuration and runs the interactive session. It is the only place
// that reads viper; every component below it takes plain values.
package processor
