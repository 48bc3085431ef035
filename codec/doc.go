/*
Package codec converts domain entities to and from storage payloads.

The Codec interface deliberately separates lenient and strict parsing.
Reads from the document store use DecodeLenient so that payloads written
by newer code, carrying fields this version does not know, still parse.
DecodeStrict is available for validation paths that must reject such
payloads.

The JSON implementation is the only codec shipped; additional codecs can
be registered by name through the registry package.
*/
package codec
