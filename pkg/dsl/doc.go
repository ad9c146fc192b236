/*
Package dsl provides a fluent Go builder for Wasteland maps.

It is an alternative to the text and YAML formats when a map is generated
programmatically or written inline in a test.

Example usage:

	b := dsl.New("LLR")
	b.Add("AAA").Go("BBB", "BBB")
	b.Add("BBB").Left("AAA").Right("ZZZ")
	b.Add("ZZZ").Sink()

	loader, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}
	eng, err := wasteland.New("", wasteland.WithLoader(loader))
*/
package dsl
