package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case User:
		o.printUser(v)
	case []User:
		if len(v) == 0 {
			fmt.Println("No users")
			return
		}
		for _, u := range v {
			o.printUser(u)
		}
	case Session:
		o.printUser(v.User)
	case Bet:
		o.printBet(v)
	case []Bet:
		if len(v) == 0 {
			fmt.Println("No bets placed")
			return
		}
		for _, b := range v {
			o.printBet(b)
		}
	default:
		o.printJSON(data)
	}
}

func (o *Output) printUser(u User) {
	banned := ""
	if u.Banned {
		banned = " [banned]"
	}
	fmt.Printf("%s (%s)%s\n", u.Username, u.Role, banned)
}

func (o *Output) printBet(b Bet) {
	if b.PlacedBy != "" {
		fmt.Printf("%s (placed by %s)\n", b.Name, b.PlacedBy)
	} else {
		fmt.Println(b.Name)
	}
}
