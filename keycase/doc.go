// Package keycase rewrites mapping keys between snake_case and camelCase.
//
// The todo API speaks camelCase on the wire and snake_case in storage.
// Incoming bodies are formatted to Snake before they reach the store and
// stored records are formatted to Camel before they are written out:
//
//	body, err := jsonvalue.DecodeMapping(raw)
//	if err != nil {
//		return err
//	}
//	attrs := keycase.FormatMapping(body, keycase.Snake)
//	// attrs has task_title, is_done, order
//
// Only TextKeys are rewritten. OtherKeys, such as integer keys decoded
// from YAML, keep their value and position. Scalars are never touched.
//
// # Known limitation
//
// ToCamel strips one trailing underscore and ToSnake never adds it back,
// so ToSnake(ToCamel("value_")) is "value". Keys ending in an underscore
// do not survive a round trip.
//
// All functions are pure and safe for concurrent use.
package keycase
