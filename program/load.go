package program

import (
	"os"
	"path/filepath"
	"strings"
)

// Load reads a program file. Files ending in .yaml or .yml are YAML,
// anything else is assembler text.
func Load(path string, asm *Assembler) (prog *Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		prog, err = ParseYAML(inf)
	default:
		if asm == nil {
			asm = &Assembler{}
		}
		prog, err = asm.Parse(inf)
	}

	if err == nil && len(prog.Name) == 0 {
		prog.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return
}
