// Package main provides the CLI entrypoint for zmk-locale-generator.
//
// zmk-locale-generator converts keyboard layouts into ZMK locale headers:
//   - Loads key tables (YAML or ZMK C headers), layouts and codepoint names
//   - Resolves every character to a single HID usage
//   - Writes one keys_<locale>.h header per locale
package main

import "zmk-locale-generator/internal/cli"

func main() {
	cli.Execute()
}
