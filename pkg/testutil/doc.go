// Package testutil provides mocks and helpers shared by nvboot's tests.
package testutil
