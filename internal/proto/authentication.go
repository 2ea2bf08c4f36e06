// Package proto contains the Go bindings for proto/users/authentication.proto.
//
// Messages are encoded directly on the protobuf wire format with protowire and
// carried over gRPC by Codec, so the service stays wire-compatible with any
// client generated from the .proto file. Field numbers below must match the
// .proto definition.
package proto

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"google.golang.org/protobuf/encoding/protowire"
)

// wireMessage is implemented by every message in this package.
type wireMessage interface {
	appendWire(b []byte) []byte
	unmarshalWire(b []byte) error
	reset()
	// validate reports string fields that are not valid UTF-8.
	validate() error
}

type RegisterError int32

const (
	RegisterError_REGISTER_ERROR_UNSPECIFIED RegisterError = 0
	RegisterError_USERNAME_TAKEN             RegisterError = 1
)

var registerErrorNames = map[RegisterError]string{
	RegisterError_REGISTER_ERROR_UNSPECIFIED: "REGISTER_ERROR_UNSPECIFIED",
	RegisterError_USERNAME_TAKEN:             "USERNAME_TAKEN",
}

func (x RegisterError) String() string {
	if s, ok := registerErrorNames[x]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

// Enum returns a pointer to a copy of x, for use in optional fields.
func (x RegisterError) Enum() *RegisterError {
	return &x
}

type LoginError int32

const (
	LoginError_LOGIN_ERROR_UNSPECIFIED LoginError = 0
	LoginError_INVALID_CREDENTIALS     LoginError = 1
)

var loginErrorNames = map[LoginError]string{
	LoginError_LOGIN_ERROR_UNSPECIFIED: "LOGIN_ERROR_UNSPECIFIED",
	LoginError_INVALID_CREDENTIALS:     "INVALID_CREDENTIALS",
}

func (x LoginError) String() string {
	if s, ok := loginErrorNames[x]; ok {
		return s
	}
	return strconv.Itoa(int(x))
}

type User struct {
	Username     string
	PasswordHash string
}

func (x *User) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *User) GetPasswordHash() string {
	if x != nil {
		return x.PasswordHash
	}
	return ""
}

func (x *User) reset() { *x = User{} }

func (x *User) appendWire(b []byte) []byte {
	if x.Username != "" {
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, x.Username)
	}
	if x.PasswordHash != "" {
		b = protowire.AppendTag(b, 2, protowire.BytesType)
		b = protowire.AppendString(b, x.PasswordHash)
	}
	return b
}

func (x *User) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			return consumeString(b, &x.Username, "users.User.username")
		case num == 2 && typ == protowire.BytesType:
			return consumeString(b, &x.PasswordHash, "users.User.password_hash")
		}
		return skipField(num, typ, b), nil
	})
}

func (x *User) validate() error {
	if err := checkString(x.Username, "users.User.username"); err != nil {
		return err
	}
	return checkString(x.PasswordHash, "users.User.password_hash")
}

type RegisterRequest struct {
	User *User
}

func (x *RegisterRequest) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *RegisterRequest) reset() { *x = RegisterRequest{} }

func (x *RegisterRequest) appendWire(b []byte) []byte {
	return appendUser(b, 1, x.User)
}

func (x *RegisterRequest) validate() error {
	if x.User == nil {
		return nil
	}
	return x.User.validate()
}

func (x *RegisterRequest) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeUser(b, &x.User)
		}
		return skipField(num, typ, b), nil
	})
}

type RegisterResponse struct {
	Error *RegisterError
}

func (x *RegisterResponse) GetError() RegisterError {
	if x != nil && x.Error != nil {
		return *x.Error
	}
	return RegisterError_REGISTER_ERROR_UNSPECIFIED
}

// HasError reports whether the optional error field is set.
func (x *RegisterResponse) HasError() bool {
	return x != nil && x.Error != nil
}

func (x *RegisterResponse) reset() { *x = RegisterResponse{} }

func (x *RegisterResponse) appendWire(b []byte) []byte {
	if x.Error != nil {
		b = protowire.AppendTag(b, 1, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(*x.Error)))
	}
	return b
}

func (x *RegisterResponse) validate() error { return nil }

func (x *RegisterResponse) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.VarintType {
			v, n := protowire.ConsumeVarint(b)
			x.Error = RegisterError(int32(v)).Enum()
			return n, nil
		}
		return skipField(num, typ, b), nil
	})
}

type LoginRequest struct {
	User *User
}

func (x *LoginRequest) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *LoginRequest) reset() { *x = LoginRequest{} }

func (x *LoginRequest) appendWire(b []byte) []byte {
	return appendUser(b, 1, x.User)
}

func (x *LoginRequest) validate() error {
	if x.User == nil {
		return nil
	}
	return x.User.validate()
}

func (x *LoginRequest) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num == 1 && typ == protowire.BytesType {
			return consumeUser(b, &x.User)
		}
		return skipField(num, typ, b), nil
	})
}

type LoginResponse struct {
	// Types that are valid to be assigned to Result:
	//
	//	*LoginResponse_Token
	//	*LoginResponse_Error
	Result isLoginResponse_Result
}

type isLoginResponse_Result interface {
	isLoginResponse_Result()
}

type LoginResponse_Token struct {
	Token string
}

type LoginResponse_Error struct {
	Error LoginError
}

func (*LoginResponse_Token) isLoginResponse_Result() {}
func (*LoginResponse_Error) isLoginResponse_Result() {}

func (x *LoginResponse) GetResult() isLoginResponse_Result {
	if x != nil {
		return x.Result
	}
	return nil
}

func (x *LoginResponse) GetToken() string {
	if r, ok := x.GetResult().(*LoginResponse_Token); ok {
		return r.Token
	}
	return ""
}

func (x *LoginResponse) GetError() LoginError {
	if r, ok := x.GetResult().(*LoginResponse_Error); ok {
		return r.Error
	}
	return LoginError_LOGIN_ERROR_UNSPECIFIED
}

func (x *LoginResponse) reset() { *x = LoginResponse{} }

func (x *LoginResponse) appendWire(b []byte) []byte {
	switch r := x.Result.(type) {
	case *LoginResponse_Token:
		b = protowire.AppendTag(b, 1, protowire.BytesType)
		b = protowire.AppendString(b, r.Token)
	case *LoginResponse_Error:
		b = protowire.AppendTag(b, 2, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(int64(r.Error)))
	}
	return b
}

func (x *LoginResponse) validate() error {
	if r, ok := x.Result.(*LoginResponse_Token); ok {
		return checkString(r.Token, "users.LoginResponse.token")
	}
	return nil
}

func (x *LoginResponse) unmarshalWire(b []byte) error {
	return consumeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == 1 && typ == protowire.BytesType:
			r := &LoginResponse_Token{}
			n, err := consumeString(b, &r.Token, "users.LoginResponse.token")
			if err != nil || n < 0 {
				return n, err
			}
			x.Result = r
			return n, nil
		case num == 2 && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			x.Result = &LoginResponse_Error{Error: LoginError(int32(v))}
			return n, nil
		}
		return skipField(num, typ, b), nil
	})
}

// consumeFields walks the fields of an encoded message. field parses the
// value that follows a tag and returns the number of bytes it consumed, or a
// negative protowire error code.
func consumeFields(b []byte, field func(num protowire.Number, typ protowire.Type, b []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("field %d: %w", num, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}

func skipField(num protowire.Number, typ protowire.Type, b []byte) int {
	return protowire.ConsumeFieldValue(num, typ, b)
}

// consumeString decodes a proto3 string field into dst. Like the protobuf
// runtime, it rejects values that are not valid UTF-8.
func consumeString(b []byte, dst *string, field string) (int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return n, nil
	}
	if err := checkString(v, field); err != nil {
		return 0, err
	}
	*dst = v
	return n, nil
}

func checkString(v, field string) error {
	if !utf8.ValidString(v) {
		return fmt.Errorf("proto: field %s contains invalid UTF-8", field)
	}
	return nil
}

func appendUser(b []byte, num protowire.Number, u *User) []byte {
	if u == nil {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, u.appendWire(nil))
}

// consumeUser decodes an embedded User. Repeated occurrences are merged, as
// protobuf does for singular message fields.
func consumeUser(b []byte, dst **User) (int, error) {
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return n, nil
	}
	if *dst == nil {
		*dst = &User{}
	}
	if err := (*dst).unmarshalWire(v); err != nil {
		return 0, fmt.Errorf("user: %w", err)
	}
	return n, nil
}
