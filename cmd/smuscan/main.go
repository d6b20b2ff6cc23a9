// smuscan identifies the semantic meaning of fields inside the AMD
// SMU's undocumented PM table by scanning for physically plausible
// value ranges and per-core array patterns.
package main

func main() {
	Execute()
}
