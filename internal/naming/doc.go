// Package naming splits free-form identifiers into lowercase word parts and
// renders those parts in kebab-case, snake_case, PascalCase and camelCase.
// Every rendering is a pure function of the parts, so "MyApp", "my-app",
// "my_app" and "myApp" all render identically.
package naming
