// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type (
	BalanceError  GenericError
	ExistsError   GenericError
	InvalidError  GenericError
	NotFoundError GenericError
	ProcessError  GenericError
	RangeError    GenericError
	StateError    GenericError
)

// common errors - keep in alphabetic order
var (
	ErrAlreadyBound            = ExistsError("organization is already bound to a governance ledger")
	ErrAlreadyConfigured       = ExistsError("governance factory is already configured")
	ErrAlreadyInitialised      = ExistsError("already initialised")
	ErrCertificateFileExists   = ExistsError("certificate file already exists")
	ErrGovernanceNotFound      = NotFoundError("governance ledger not found")
	ErrIndexOutOfRange         = RangeError("organization index out of range")
	ErrInsufficientAllowance   = BalanceError("insufficient allowance")
	ErrInsufficientBalance     = BalanceError("insufficient balance")
	ErrInvalidAddress          = InvalidError("invalid address")
	ErrInvalidCount            = InvalidError("invalid count")
	ErrInvalidIPAddress        = InvalidError("invalid IP address")
	ErrInvalidLoggerChannel    = InvalidError("invalid logger channel")
	ErrInvalidParameters       = InvalidError("invalid parameters")
	ErrInvalidRecipient        = InvalidError("invalid recipient")
	ErrInvalidStructPointer    = InvalidError("invalid struct pointer")
	ErrKeyFileExists           = ExistsError("key file already exists")
	ErrMissingParameters       = InvalidError("missing parameters")
	ErrNotAuthorised           = ProcessError("caller is not authorised")
	ErrNotConfigured           = StateError("governance factory is not configured")
	ErrNotInitialised          = StateError("not initialised")
	ErrOrganizationNotFound    = NotFoundError("organization not found")
	ErrRateLimiting            = ProcessError("rate limiting")
	ErrRecordCorrupt           = ProcessError("journal record is corrupt")
	ErrUnbound                 = StateError("organization is not bound to a governance ledger")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e BalanceError) Error() string  { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RangeError) Error() string    { return string(e) }
func (e StateError) Error() string    { return string(e) }

// determine the class of an error
func IsErrBalance(e error) bool  { _, ok := e.(BalanceError); return ok }
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRange(e error) bool    { _, ok := e.(RangeError); return ok }
func IsErrState(e error) bool    { _, ok := e.(StateError); return ok }
