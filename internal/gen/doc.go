// Package gen generates Velocity templates that turn JSON form data into XML
// shaped by an XSD schema.
//
// Generation approach uses text/template for the document skeleton and a
// recursive renderer for the XML block.
//
// Template patterns:
//   - One #set per mapping binding the variable to its $request path
//   - Nested XML following the XSD parent/children hierarchy
//   - Mapped leaves wrapped in #if null checks and rendered with quiet
//     references, so absent values produce no output
//   - A flat <Root> fallback when the XSD has no root element
package gen
