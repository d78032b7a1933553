// Package decoder turns a buffered request body into a flat field map.
//
// The encoding is selected once per request by [DetectEncoding] from the
// declared Content-Type; [Decode] then applies exactly that encoding. Two
// encodings are recognized: application/x-www-form-urlencoded and JSON
// objects. Anything else decodes to an empty map.
package decoder
