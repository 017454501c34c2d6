package program

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/xbtm/table"
)

// yamlRule is a rule as written in a YAML program.
type yamlRule struct {
	Symbol string `yaml:"symbol"`
	State  string `yaml:"state"`
	Write  string `yaml:"write"`
	Move   string `yaml:"move"`
	Next   string `yaml:"next"`
}

// yamlProgram is the document layout of a YAML program.
type yamlProgram struct {
	Name   string     `yaml:"name,omitempty"`
	Blank  string     `yaml:"blank,omitempty"`
	Length *int       `yaml:"length,omitempty"`
	Start  string     `yaml:"start,omitempty"`
	Steps  *int       `yaml:"steps,omitempty"`
	Rules  []yamlRule `yaml:"rules"`
}

func (yr *yamlRule) rule() (rule Rule, err error) {
	rule.Key.Symbol, err = table.ParseSymbol(yr.Symbol)
	if err != nil {
		return
	}
	rule.Key.State, err = table.ParseState(yr.State)
	if err != nil {
		return
	}
	rule.Instruction.Symbol, err = table.ParseSymbol(yr.Write)
	if err != nil {
		return
	}
	rule.Instruction.Direction, err = table.ParseDirection(yr.Move)
	if err != nil {
		return
	}
	rule.Instruction.Next, err = table.ParseState(yr.Next)
	return
}

// ParseYAML reads a YAML program. Omitted run parameters keep their
// defaults; unknown fields are rejected.
func ParseYAML(input io.Reader) (prog *Program, err error) {
	var doc yamlProgram

	dec := yaml.NewDecoder(input)
	dec.KnownFields(true)
	err = dec.Decode(&doc)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return
	}

	prog = NewProgram()
	prog.Name = doc.Name

	if len(doc.Blank) != 0 {
		prog.Blank, err = table.ParseSymbol(doc.Blank)
		if err != nil {
			prog = nil
			return
		}
	}
	if len(doc.Start) != 0 {
		prog.Start, err = table.ParseState(doc.Start)
		if err != nil {
			prog = nil
			return
		}
	}
	if doc.Length != nil {
		prog.Length = *doc.Length
	}
	if doc.Steps != nil {
		if *doc.Steps < 0 {
			err = ErrParseNumber(f("%d", *doc.Steps))
			prog = nil
			return
		}
		prog.Steps = *doc.Steps
	}

	for n := range doc.Rules {
		var rule Rule
		rule, err = doc.Rules[n].rule()
		if err != nil {
			err = ErrRule{Index: n, Err: err}
			prog = nil
			return
		}
		prog.Rules = append(prog.Rules, rule)
	}

	return
}

// WriteYAML writes the program as a YAML document.
func (prog *Program) WriteYAML(output io.Writer) (err error) {
	doc := yamlProgram{
		Name:   prog.Name,
		Blank:  prog.Blank.String(),
		Length: &prog.Length,
		Start:  prog.Start.String(),
		Steps:  &prog.Steps,
		Rules:  make([]yamlRule, 0, len(prog.Rules)),
	}

	for _, rule := range prog.Rules {
		doc.Rules = append(doc.Rules, yamlRule{
			Symbol: rule.Key.Symbol.String(),
			State:  rule.Key.State.String(),
			Write:  rule.Instruction.Symbol.String(),
			Move:   rule.Instruction.Direction.String(),
			Next:   rule.Instruction.Next.String(),
		})
	}

	enc := yaml.NewEncoder(output)
	enc.SetIndent(2)
	err = enc.Encode(&doc)
	if err != nil {
		return
	}

	err = enc.Close()
	return
}
