/*
Package rubic is the front end of a small Ruby-like language.

The packages below it do the work: token defines the vocabulary, lexer turns
source into tokens, parser builds an ast.Program and records diagnostics for
malformed input. Engine ties them together for applications:

	engine := rubic.New(rubic.Options{})
	result, err := engine.Parse("x = 5\nreturn x")
	if err != nil {
		// source rejected, e.g. too large
	}
	if !result.OK() {
		fmt.Println(result.Err())
	}

There is no evaluator; the front end stops at the syntax tree.
*/
package rubic
