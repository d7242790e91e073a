// Package cli implements the kcc command line: it maps argv onto the chat
// service, renders results and prints usage.
//
//	kcc user | host | topic ...     manage the local profile and topics
//	kcc /<topic>[/<user>][/<n>]     read messages
//	kcc /<topic> <words...>         send a message
//
// App.Run returns the process exit code so that cmd/kcc stays a thin wrapper.
package cli
