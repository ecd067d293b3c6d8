// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"fmt"

	"github.com/go-faster/jx"
)

func (s *ErrorStatusCode) Error() string {
	return fmt.Sprintf("code %d: %+v", s.StatusCode, s.Response)
}

// Ref: #/components/schemas/Column
type Column struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Nullable bool   `json:"nullable"`
}

// GetName returns the value of Name.
func (s *Column) GetName() string {
	return s.Name
}

// GetType returns the value of Type.
func (s *Column) GetType() string {
	return s.Type
}

// GetNullable returns the value of Nullable.
func (s *Column) GetNullable() bool {
	return s.Nullable
}

// SetName sets the value of Name.
func (s *Column) SetName(val string) {
	s.Name = val
}

// SetType sets the value of Type.
func (s *Column) SetType(val string) {
	s.Type = val
}

// SetNullable sets the value of Nullable.
func (s *Column) SetNullable(val bool) {
	s.Nullable = val
}

// Ref: #/components/schemas/Error
type Error struct {
	Message string `json:"message"`
	// Machine-readable code, set on 500 responses.
	ErrorCode OptString `json:"error_code"`
}

// GetMessage returns the value of Message.
func (s *Error) GetMessage() string {
	return s.Message
}

// GetErrorCode returns the value of ErrorCode.
func (s *Error) GetErrorCode() OptString {
	return s.ErrorCode
}

// SetMessage sets the value of Message.
func (s *Error) SetMessage(val string) {
	s.Message = val
}

// SetErrorCode sets the value of ErrorCode.
func (s *Error) SetErrorCode(val OptString) {
	s.ErrorCode = val
}

// ErrorStatusCode wraps Error with StatusCode.
type ErrorStatusCode struct {
	StatusCode int
	Response   Error
}

// GetStatusCode returns the value of StatusCode.
func (s *ErrorStatusCode) GetStatusCode() int {
	return s.StatusCode
}

// GetResponse returns the value of Response.
func (s *ErrorStatusCode) GetResponse() Error {
	return s.Response
}

// SetStatusCode sets the value of StatusCode.
func (s *ErrorStatusCode) SetStatusCode(val int) {
	s.StatusCode = val
}

// SetResponse sets the value of Response.
func (s *ErrorStatusCode) SetResponse(val Error) {
	s.Response = val
}

// Ref: #/components/schemas/FavoriteSandwich
type FavoriteSandwich struct {
	ProductName  string `json:"product_name"`
	TotalOrdered int64  `json:"total_ordered"`
}

// GetProductName returns the value of ProductName.
func (s *FavoriteSandwich) GetProductName() string {
	return s.ProductName
}

// GetTotalOrdered returns the value of TotalOrdered.
func (s *FavoriteSandwich) GetTotalOrdered() int64 {
	return s.TotalOrdered
}

// SetProductName sets the value of ProductName.
func (s *FavoriteSandwich) SetProductName(val string) {
	s.ProductName = val
}

// SetTotalOrdered sets the value of TotalOrdered.
func (s *FavoriteSandwich) SetTotalOrdered(val int64) {
	s.TotalOrdered = val
}

// Ref: #/components/schemas/Inventory
type Inventory struct {
	Dialect  string            `json:"dialect"`
	Database string            `json:"database"`
	Schemas  []InventorySchema `json:"schemas"`
}

// GetDialect returns the value of Dialect.
func (s *Inventory) GetDialect() string {
	return s.Dialect
}

// GetDatabase returns the value of Database.
func (s *Inventory) GetDatabase() string {
	return s.Database
}

// GetSchemas returns the value of Schemas.
func (s *Inventory) GetSchemas() []InventorySchema {
	return s.Schemas
}

// SetDialect sets the value of Dialect.
func (s *Inventory) SetDialect(val string) {
	s.Dialect = val
}

// SetDatabase sets the value of Database.
func (s *Inventory) SetDatabase(val string) {
	s.Database = val
}

// SetSchemas sets the value of Schemas.
func (s *Inventory) SetSchemas(val []InventorySchema) {
	s.Schemas = val
}

// Ref: #/components/schemas/InventorySchema
type InventorySchema struct {
	Name   string           `json:"name"`
	Tables []InventoryTable `json:"tables"`
}

// GetName returns the value of Name.
func (s *InventorySchema) GetName() string {
	return s.Name
}

// GetTables returns the value of Tables.
func (s *InventorySchema) GetTables() []InventoryTable {
	return s.Tables
}

// SetName sets the value of Name.
func (s *InventorySchema) SetName(val string) {
	s.Name = val
}

// SetTables sets the value of Tables.
func (s *InventorySchema) SetTables(val []InventoryTable) {
	s.Tables = val
}

// Ref: #/components/schemas/InventoryTable
type InventoryTable struct {
	Name         string    `json:"name"`
	Columns      []Column  `json:"columns"`
	ColumnsError OptString `json:"columns_error"`
	// Sampled rows as objects keyed by column name, in column order.
	SampleRows  []jx.Raw  `json:"sample_rows"`
	SampleError OptString `json:"sample_error"`
}

// GetName returns the value of Name.
func (s *InventoryTable) GetName() string {
	return s.Name
}

// GetColumns returns the value of Columns.
func (s *InventoryTable) GetColumns() []Column {
	return s.Columns
}

// GetColumnsError returns the value of ColumnsError.
func (s *InventoryTable) GetColumnsError() OptString {
	return s.ColumnsError
}

// GetSampleRows returns the value of SampleRows.
func (s *InventoryTable) GetSampleRows() []jx.Raw {
	return s.SampleRows
}

// GetSampleError returns the value of SampleError.
func (s *InventoryTable) GetSampleError() OptString {
	return s.SampleError
}

// SetName sets the value of Name.
func (s *InventoryTable) SetName(val string) {
	s.Name = val
}

// SetColumns sets the value of Columns.
func (s *InventoryTable) SetColumns(val []Column) {
	s.Columns = val
}

// SetColumnsError sets the value of ColumnsError.
func (s *InventoryTable) SetColumnsError(val OptString) {
	s.ColumnsError = val
}

// SetSampleRows sets the value of SampleRows.
func (s *InventoryTable) SetSampleRows(val []jx.Raw) {
	s.SampleRows = val
}

// SetSampleError sets the value of SampleError.
func (s *InventoryTable) SetSampleError(val OptString) {
	s.SampleError = val
}

// Ref: #/components/schemas/LoginRequest
type LoginRequest struct {
	PhoneNumber OptNilString `json:"phone_number"`
	FirstName   OptNilString `json:"first_name"`
	LastName    OptNilString `json:"last_name"`
}

// GetPhoneNumber returns the value of PhoneNumber.
func (s *LoginRequest) GetPhoneNumber() OptNilString {
	return s.PhoneNumber
}

// GetFirstName returns the value of FirstName.
func (s *LoginRequest) GetFirstName() OptNilString {
	return s.FirstName
}

// GetLastName returns the value of LastName.
func (s *LoginRequest) GetLastName() OptNilString {
	return s.LastName
}

// SetPhoneNumber sets the value of PhoneNumber.
func (s *LoginRequest) SetPhoneNumber(val OptNilString) {
	s.PhoneNumber = val
}

// SetFirstName sets the value of FirstName.
func (s *LoginRequest) SetFirstName(val OptNilString) {
	s.FirstName = val
}

// SetLastName sets the value of LastName.
func (s *LoginRequest) SetLastName(val OptNilString) {
	s.LastName = val
}

// Ref: #/components/schemas/LoginResponse
type LoginResponse struct {
	Message string    `json:"message"`
	User    LoginUser `json:"user"`
}

// GetMessage returns the value of Message.
func (s *LoginResponse) GetMessage() string {
	return s.Message
}

// GetUser returns the value of User.
func (s *LoginResponse) GetUser() LoginUser {
	return s.User
}

// SetMessage sets the value of Message.
func (s *LoginResponse) SetMessage(val string) {
	s.Message = val
}

// SetUser sets the value of User.
func (s *LoginResponse) SetUser(val LoginUser) {
	s.User = val
}

// A warehouse customer carries customer_key and phone_number, a local
// user carries id.
// Ref: #/components/schemas/LoginUser
type LoginUser struct {
	ID          OptInt64  `json:"id"`
	CustomerKey OptString `json:"customer_key"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber OptString `json:"phone_number"`
}

// GetID returns the value of ID.
func (s *LoginUser) GetID() OptInt64 {
	return s.ID
}

// GetCustomerKey returns the value of CustomerKey.
func (s *LoginUser) GetCustomerKey() OptString {
	return s.CustomerKey
}

// GetFirstName returns the value of FirstName.
func (s *LoginUser) GetFirstName() string {
	return s.FirstName
}

// GetLastName returns the value of LastName.
func (s *LoginUser) GetLastName() string {
	return s.LastName
}

// GetPhoneNumber returns the value of PhoneNumber.
func (s *LoginUser) GetPhoneNumber() OptString {
	return s.PhoneNumber
}

// SetID sets the value of ID.
func (s *LoginUser) SetID(val OptInt64) {
	s.ID = val
}

// SetCustomerKey sets the value of CustomerKey.
func (s *LoginUser) SetCustomerKey(val OptString) {
	s.CustomerKey = val
}

// SetFirstName sets the value of FirstName.
func (s *LoginUser) SetFirstName(val string) {
	s.FirstName = val
}

// SetLastName sets the value of LastName.
func (s *LoginUser) SetLastName(val string) {
	s.LastName = val
}

// SetPhoneNumber sets the value of PhoneNumber.
func (s *LoginUser) SetPhoneNumber(val OptString) {
	s.PhoneNumber = val
}

// Ref: #/components/schemas/Message
type Message struct {
	Message string `json:"message"`
}

// GetMessage returns the value of Message.
func (s *Message) GetMessage() string {
	return s.Message
}

// SetMessage sets the value of Message.
func (s *Message) SetMessage(val string) {
	s.Message = val
}

// Ref: #/components/schemas/MonthBucket
type MonthBucket struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"month_number"`
	Year        int    `json:"year"`
	Sandwiches  int64  `json:"sandwiches"`
}

// GetMonth returns the value of Month.
func (s *MonthBucket) GetMonth() string {
	return s.Month
}

// GetMonthNumber returns the value of MonthNumber.
func (s *MonthBucket) GetMonthNumber() int {
	return s.MonthNumber
}

// GetYear returns the value of Year.
func (s *MonthBucket) GetYear() int {
	return s.Year
}

// GetSandwiches returns the value of Sandwiches.
func (s *MonthBucket) GetSandwiches() int64 {
	return s.Sandwiches
}

// SetMonth sets the value of Month.
func (s *MonthBucket) SetMonth(val string) {
	s.Month = val
}

// SetMonthNumber sets the value of MonthNumber.
func (s *MonthBucket) SetMonthNumber(val int) {
	s.MonthNumber = val
}

// SetYear sets the value of Year.
func (s *MonthBucket) SetYear(val int) {
	s.Year = val
}

// SetSandwiches sets the value of Sandwiches.
func (s *MonthBucket) SetSandwiches(val int64) {
	s.Sandwiches = val
}

// NewNilInt64 returns new NilInt64 with value set to v.
func NewNilInt64(v int64) NilInt64 {
	return NilInt64{
		Value: v,
	}
}

// NilInt64 is nullable int64.
type NilInt64 struct {
	Value int64
	Null  bool
}

// SetTo sets value to v.
func (o *NilInt64) SetTo(v int64) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilInt64) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilInt64) SetToNull() {
	o.Null = true
	var v int64
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilInt64) Get() (v int64, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilInt64) Or(d int64) int64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewNilStore returns new NilStore with value set to v.
func NewNilStore(v Store) NilStore {
	return NilStore{
		Value: v,
	}
}

// NilStore is nullable Store.
type NilStore struct {
	Value Store
	Null  bool
}

// SetTo sets value to v.
func (o *NilStore) SetTo(v Store) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilStore) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilStore) SetToNull() {
	o.Null = true
	var v Store
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilStore) Get() (v Store, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilStore) Or(d Store) Store {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewNilString returns new NilString with value set to v.
func NewNilString(v string) NilString {
	return NilString{
		Value: v,
	}
}

// NilString is nullable string.
type NilString struct {
	Value string
	Null  bool
}

// SetTo sets value to v.
func (o *NilString) SetTo(v string) {
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o NilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *NilString) SetToNull() {
	o.Null = true
	var v string
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o NilString) Get() (v string, ok bool) {
	if o.Null {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o NilString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptInt64 returns new OptInt64 with value set to v.
func NewOptInt64(v int64) OptInt64 {
	return OptInt64{
		Value: v,
		Set:   true,
	}
}

// OptInt64 is optional int64.
type OptInt64 struct {
	Value int64
	Set   bool
}

// IsSet returns true if OptInt64 was set.
func (o OptInt64) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptInt64) Reset() {
	var v int64
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptInt64) SetTo(v int64) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptInt64) Get() (v int64, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptInt64) Or(d int64) int64 {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptLoginRequest returns new OptLoginRequest with value set to v.
func NewOptLoginRequest(v LoginRequest) OptLoginRequest {
	return OptLoginRequest{
		Value: v,
		Set:   true,
	}
}

// OptLoginRequest is optional LoginRequest.
type OptLoginRequest struct {
	Value LoginRequest
	Set   bool
}

// IsSet returns true if OptLoginRequest was set.
func (o OptLoginRequest) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptLoginRequest) Reset() {
	var v LoginRequest
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptLoginRequest) SetTo(v LoginRequest) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptLoginRequest) Get() (v LoginRequest, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptLoginRequest) Or(d LoginRequest) LoginRequest {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptNilString returns new OptNilString with value set to v.
func NewOptNilString(v string) OptNilString {
	return OptNilString{
		Value: v,
		Set:   true,
	}
}

// OptNilString is optional nullable string.
type OptNilString struct {
	Value string
	Set   bool
	Null  bool
}

// IsSet returns true if OptNilString was set.
func (o OptNilString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptNilString) Reset() {
	var v string
	o.Value = v
	o.Set = false
	o.Null = false
}

// SetTo sets value to v.
func (o *OptNilString) SetTo(v string) {
	o.Set = true
	o.Null = false
	o.Value = v
}

// IsNull returns true if value is Null.
func (o OptNilString) IsNull() bool { return o.Null }

// SetToNull sets value to null.
func (o *OptNilString) SetToNull() {
	o.Set = true
	o.Null = true
	var v string
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptNilString) Get() (v string, ok bool) {
	if o.Null {
		return v, false
	}
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptNilString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// NewOptString returns new OptString with value set to v.
func NewOptString(v string) OptString {
	return OptString{
		Value: v,
		Set:   true,
	}
}

// OptString is optional string.
type OptString struct {
	Value string
	Set   bool
}

// IsSet returns true if OptString was set.
func (o OptString) IsSet() bool { return o.Set }

// Reset unsets value.
func (o *OptString) Reset() {
	var v string
	o.Value = v
	o.Set = false
}

// SetTo sets value to v.
func (o *OptString) SetTo(v string) {
	o.Set = true
	o.Value = v
}

// Get returns value and boolean that denotes whether value was set.
func (o OptString) Get() (v string, ok bool) {
	if !o.Set {
		return v, false
	}
	return o.Value, true
}

// Or returns value if set, or given parameter if does not.
func (o OptString) Or(d string) string {
	if v, ok := o.Get(); ok {
		return v
	}
	return d
}

// Ref: #/components/schemas/ReportProduct
type ReportProduct struct {
	Name         string   `json:"name"`
	Calories     NilInt64 `json:"calories"`
	TimesOrdered int64    `json:"times_ordered"`
}

// GetName returns the value of Name.
func (s *ReportProduct) GetName() string {
	return s.Name
}

// GetCalories returns the value of Calories.
func (s *ReportProduct) GetCalories() NilInt64 {
	return s.Calories
}

// GetTimesOrdered returns the value of TimesOrdered.
func (s *ReportProduct) GetTimesOrdered() int64 {
	return s.TimesOrdered
}

// SetName sets the value of Name.
func (s *ReportProduct) SetName(val string) {
	s.Name = val
}

// SetCalories sets the value of Calories.
func (s *ReportProduct) SetCalories(val NilInt64) {
	s.Calories = val
}

// SetTimesOrdered sets the value of TimesOrdered.
func (s *ReportProduct) SetTimesOrdered(val int64) {
	s.TimesOrdered = val
}

// Ref: #/components/schemas/SandwichDetail
type SandwichDetail struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetID returns the value of ID.
func (s *SandwichDetail) GetID() int64 {
	return s.ID
}

// GetName returns the value of Name.
func (s *SandwichDetail) GetName() string {
	return s.Name
}

// GetDescription returns the value of Description.
func (s *SandwichDetail) GetDescription() string {
	return s.Description
}

// SetID sets the value of ID.
func (s *SandwichDetail) SetID(val int64) {
	s.ID = val
}

// SetName sets the value of Name.
func (s *SandwichDetail) SetName(val string) {
	s.Name = val
}

// SetDescription sets the value of Description.
func (s *SandwichDetail) SetDescription(val string) {
	s.Description = val
}

// Ref: #/components/schemas/SandwichDetailsResponse
type SandwichDetailsResponse struct {
	User            User             `json:"user"`
	SandwichDetails []SandwichDetail `json:"sandwich_details"`
}

// GetUser returns the value of User.
func (s *SandwichDetailsResponse) GetUser() User {
	return s.User
}

// GetSandwichDetails returns the value of SandwichDetails.
func (s *SandwichDetailsResponse) GetSandwichDetails() []SandwichDetail {
	return s.SandwichDetails
}

// SetUser sets the value of User.
func (s *SandwichDetailsResponse) SetUser(val User) {
	s.User = val
}

// SetSandwichDetails sets the value of SandwichDetails.
func (s *SandwichDetailsResponse) SetSandwichDetails(val []SandwichDetail) {
	s.SandwichDetails = val
}

// Ref: #/components/schemas/SandwichReport
type SandwichReport struct {
	CustomerKey         string        `json:"customer_key"`
	FavoriteSandwich    ReportProduct `json:"favorite_sandwich"`
	TotalOrders         int64         `json:"total_orders"`
	TotalSandwiches     int64         `json:"total_sandwiches"`
	TotalSpent          float64       `json:"total_spent"`
	FavoriteOrderMethod NilString     `json:"favorite_order_method"`
	FavoriteStore       NilStore      `json:"favorite_store"`
	OrderTimeline       []MonthBucket `json:"order_timeline"`
}

// GetCustomerKey returns the value of CustomerKey.
func (s *SandwichReport) GetCustomerKey() string {
	return s.CustomerKey
}

// GetFavoriteSandwich returns the value of FavoriteSandwich.
func (s *SandwichReport) GetFavoriteSandwich() ReportProduct {
	return s.FavoriteSandwich
}

// GetTotalOrders returns the value of TotalOrders.
func (s *SandwichReport) GetTotalOrders() int64 {
	return s.TotalOrders
}

// GetTotalSandwiches returns the value of TotalSandwiches.
func (s *SandwichReport) GetTotalSandwiches() int64 {
	return s.TotalSandwiches
}

// GetTotalSpent returns the value of TotalSpent.
func (s *SandwichReport) GetTotalSpent() float64 {
	return s.TotalSpent
}

// GetFavoriteOrderMethod returns the value of FavoriteOrderMethod.
func (s *SandwichReport) GetFavoriteOrderMethod() NilString {
	return s.FavoriteOrderMethod
}

// GetFavoriteStore returns the value of FavoriteStore.
func (s *SandwichReport) GetFavoriteStore() NilStore {
	return s.FavoriteStore
}

// GetOrderTimeline returns the value of OrderTimeline.
func (s *SandwichReport) GetOrderTimeline() []MonthBucket {
	return s.OrderTimeline
}

// SetCustomerKey sets the value of CustomerKey.
func (s *SandwichReport) SetCustomerKey(val string) {
	s.CustomerKey = val
}

// SetFavoriteSandwich sets the value of FavoriteSandwich.
func (s *SandwichReport) SetFavoriteSandwich(val ReportProduct) {
	s.FavoriteSandwich = val
}

// SetTotalOrders sets the value of TotalOrders.
func (s *SandwichReport) SetTotalOrders(val int64) {
	s.TotalOrders = val
}

// SetTotalSandwiches sets the value of TotalSandwiches.
func (s *SandwichReport) SetTotalSandwiches(val int64) {
	s.TotalSandwiches = val
}

// SetTotalSpent sets the value of TotalSpent.
func (s *SandwichReport) SetTotalSpent(val float64) {
	s.TotalSpent = val
}

// SetFavoriteOrderMethod sets the value of FavoriteOrderMethod.
func (s *SandwichReport) SetFavoriteOrderMethod(val NilString) {
	s.FavoriteOrderMethod = val
}

// SetFavoriteStore sets the value of FavoriteStore.
func (s *SandwichReport) SetFavoriteStore(val NilStore) {
	s.FavoriteStore = val
}

// SetOrderTimeline sets the value of OrderTimeline.
func (s *SandwichReport) SetOrderTimeline(val []MonthBucket) {
	s.OrderTimeline = val
}

// Ref: #/components/schemas/Store
type Store struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

// GetCity returns the value of City.
func (s *Store) GetCity() string {
	return s.City
}

// GetAddress returns the value of Address.
func (s *Store) GetAddress() string {
	return s.Address
}

// SetCity sets the value of City.
func (s *Store) SetCity(val string) {
	s.City = val
}

// SetAddress sets the value of Address.
func (s *Store) SetAddress(val string) {
	s.Address = val
}

// Ref: #/components/schemas/TableCheck
type TableCheck struct {
	Schema         string   `json:"schema"`
	Table          string   `json:"table"`
	Exists         bool     `json:"exists"`
	Columns        []Column `json:"columns"`
	MissingColumns []string `json:"missing_columns"`
	RowCount       int64    `json:"row_count"`
}

// GetSchema returns the value of Schema.
func (s *TableCheck) GetSchema() string {
	return s.Schema
}

// GetTable returns the value of Table.
func (s *TableCheck) GetTable() string {
	return s.Table
}

// GetExists returns the value of Exists.
func (s *TableCheck) GetExists() bool {
	return s.Exists
}

// GetColumns returns the value of Columns.
func (s *TableCheck) GetColumns() []Column {
	return s.Columns
}

// GetMissingColumns returns the value of MissingColumns.
func (s *TableCheck) GetMissingColumns() []string {
	return s.MissingColumns
}

// GetRowCount returns the value of RowCount.
func (s *TableCheck) GetRowCount() int64 {
	return s.RowCount
}

// SetSchema sets the value of Schema.
func (s *TableCheck) SetSchema(val string) {
	s.Schema = val
}

// SetTable sets the value of Table.
func (s *TableCheck) SetTable(val string) {
	s.Table = val
}

// SetExists sets the value of Exists.
func (s *TableCheck) SetExists(val bool) {
	s.Exists = val
}

// SetColumns sets the value of Columns.
func (s *TableCheck) SetColumns(val []Column) {
	s.Columns = val
}

// SetMissingColumns sets the value of MissingColumns.
func (s *TableCheck) SetMissingColumns(val []string) {
	s.MissingColumns = val
}

// SetRowCount sets the value of RowCount.
func (s *TableCheck) SetRowCount(val int64) {
	s.RowCount = val
}

// Ref: #/components/schemas/User
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GetID returns the value of ID.
func (s *User) GetID() int64 {
	return s.ID
}

// GetFirstName returns the value of FirstName.
func (s *User) GetFirstName() string {
	return s.FirstName
}

// GetLastName returns the value of LastName.
func (s *User) GetLastName() string {
	return s.LastName
}

// SetID sets the value of ID.
func (s *User) SetID(val int64) {
	s.ID = val
}

// SetFirstName sets the value of FirstName.
func (s *User) SetFirstName(val string) {
	s.FirstName = val
}

// SetLastName sets the value of LastName.
func (s *User) SetLastName(val string) {
	s.LastName = val
}

// Ref: #/components/schemas/VersionResponse
type VersionResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// GetMessage returns the value of Message.
func (s *VersionResponse) GetMessage() string {
	return s.Message
}

// GetVersion returns the value of Version.
func (s *VersionResponse) GetVersion() string {
	return s.Version
}

// SetMessage sets the value of Message.
func (s *VersionResponse) SetMessage(val string) {
	s.Message = val
}

// SetVersion sets the value of Version.
func (s *VersionResponse) SetVersion(val string) {
	s.Version = val
}
