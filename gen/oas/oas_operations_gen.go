// Code generated by ogen, DO NOT EDIT.

package oas

// OperationName is the ogen operation name
type OperationName = string

const (
	CheckCustomerTableOperation OperationName = "CheckCustomerTable"
	FavoriteSandwichOperation   OperationName = "FavoriteSandwich"
	HelloOperation              OperationName = "Hello"
	InspectTablesOperation      OperationName = "InspectTables"
	LoginOperation              OperationName = "Login"
	SandwichDetailsOperation    OperationName = "SandwichDetails"
	SandwichReportOperation     OperationName = "SandwichReport"
	TestSnowflakeOperation      OperationName = "TestSnowflake"
)
