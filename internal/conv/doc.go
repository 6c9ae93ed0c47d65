// Package conv provides safe integer type conversions with overflow checks.
package conv
