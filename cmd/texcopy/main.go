// Command texcopy checks buffer-image copy plans and inspects image mip chains.
//
// Usage:
//
//	texcopy check plan.yaml          # validate every copy, exit 1 on failure
//	texcopy check -o json plan.jsonc
//	texcopy mips --width 1024 --height 512 --format BC7_UNORM_BLOCK
//	texcopy mips --from sprite.png
//	texcopy formats --family astc
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
