// Package repository issues the SQL statements of the service.
//
// Statements are built with squirrel and executed through the database
// package, which logs and traces them. Repositories return raw driver
// errors; classification happens in the service and sqlerr packages.
package repository
