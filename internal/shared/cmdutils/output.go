package cmdutils

import "fmt"

const logo = "🌉"

// PrintResult renders a tool call result: a bare string, a list of text
// blocks, or whatever opaque content the server returned.
func PrintResult(result any) {
	switch v := result.(type) {
	case string:
		fmt.Printf("\n%s toolbridge\n%s\n\n", logo, v)
	case []string:
		fmt.Printf("\n%s toolbridge\n", logo)
		for _, s := range v {
			fmt.Println(s)
		}
		fmt.Println()
	default:
		fmt.Printf("\n%s toolbridge\n%v\n\n", logo, v)
	}
}
