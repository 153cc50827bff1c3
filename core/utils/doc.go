// Package utils provides loose type conversion for values decoded from XML-RPC
// responses, where the same field may arrive as an int, a string or a double
// depending on the server.
package utils
