package dotenv_test

import (
	"fmt"

	"github.com/ardnew/dotenvgen/dotenv"
)

func ExampleParse() {
	src := `# database
export DB_HOST=localhost   # default
DB_NAME='app $prod'
GREETING="hello\tworld"
`

	for entry, err := range dotenv.Parse(src) {
		if err != nil {
			fmt.Println(err)

			continue
		}

		fmt.Printf("%s=%q (%s)\n", entry.Name, entry.Value, entry.Quote)
	}
	// Output:
	// DB_HOST="localhost" (none)
	// DB_NAME="app $prod" (single)
	// GREETING="hello\tworld" (double)
}

func ExampleParse_errors() {
	src := "OK=1\nBAD=\"open\nALSO_OK=2\n"

	_, err := dotenv.CollectAll(dotenv.Parse(src))

	for _, pe := range dotenv.ParseErrors(err) {
		fmt.Println(pe)
	}
	// Output:
	// line 2:5: unterminated quote: missing closing "
}

func ExampleLookup() {
	env := dotenv.MapEnv{"API_URL": "https://example.com"}

	_, err := dotenv.Lookup("API_URLS",
		dotenv.WithFilename(".env.example-missing"),
		dotenv.WithEnv(env),
	)
	fmt.Println(err)
	// Output:
	// environment variable 'API_URLS' not defined
}
