// unogen locates an OpenOffice installation and its SDK, and turns
// UNO IDL definitions into Java type stubs using the SDK tools.
package main

import "github.com/unotools/unogen/cmd/unogen/internal"

func main() {
	internal.Execute()
}
