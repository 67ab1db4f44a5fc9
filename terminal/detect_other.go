//go:build !unix

package terminal

// DetectColorMode assumes a modern terminal
func DetectColorMode() ColorMode {
	return ColorModeTrueColor
}

// resetTerminalMode is a no-op where termios does not exist
func resetTerminalMode() {}
