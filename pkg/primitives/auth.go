package primitives

import (
	"fmt"
	"math"
	"sort"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"slisp/pkg/errs"
	"slisp/pkg/interner"
	"slisp/pkg/value"
)

// hashPassword and checkPassword adapt the teacher's
// pkg/eval/auth_helpers.go HashPassword/VerifyPassword pair onto the
// Value calling convention: (hash-password "pw") -> String,
// (check-password "hash" "pw") -> Boolean.
func hashPassword(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertArity(1, len(args)); err != nil {
		return value.Value{}, err
	}
	pw, err := stringArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return value.Value{}, errs.NewIOError(err)
	}
	return value.FromString(string(hashed)), nil
}

func checkPassword(_ interface{}, args []value.Value) (value.Value, error) {
	if err := errs.AssertArity(2, len(args)); err != nil {
		return value.Value{}, err
	}
	hash, err := stringArg(args[0])
	if err != nil {
		return value.Value{}, err
	}
	pw, err := stringArg(args[1])
	if err != nil {
		return value.Value{}, err
	}
	ok := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
	return value.FromBoolean(ok), nil
}

// makeJwtSign and makeJwtVerify adapt the teacher's
// pkg/eval/auth_helpers.go SignToken/VerifyToken pair onto an
// association-list payload: (jwt-sign claims secret) -> String,
// (jwt-verify token secret) -> claims, where claims is a List of
// (key value) pairs (SPEC_FULL.md §6's documented interface). Both
// close over the interner so claim keys round-trip through Symbol
// interning rather than needing a Map Value kind.
func makeJwtSign(in *interner.Interner) value.Native {
	return func(_ interface{}, args []value.Value) (value.Value, error) {
		if err := errs.AssertArity(2, len(args)); err != nil {
			return value.Value{}, err
		}
		claimsArg, ok := args[0].AsList()
		if !ok {
			return value.Value{}, errs.NewTypeError("List", args[0].Kind().String())
		}
		secret, err := stringArg(args[1])
		if err != nil {
			return value.Value{}, err
		}

		claims, err := claimsFromAssocList(claimsArg, in)
		if err != nil {
			return value.Value{}, err
		}

		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, serr := token.SignedString([]byte(secret))
		if serr != nil {
			return value.Value{}, errs.NewIOError(serr)
		}
		return value.FromString(signed), nil
	}
}

func makeJwtVerify(in *interner.Interner) value.Native {
	return func(_ interface{}, args []value.Value) (value.Value, error) {
		if err := errs.AssertArity(2, len(args)); err != nil {
			return value.Value{}, err
		}
		tokenStr, err := stringArg(args[0])
		if err != nil {
			return value.Value{}, err
		}
		secret, err := stringArg(args[1])
		if err != nil {
			return value.Value{}, err
		}

		token, perr := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errs.NewTypeError("HMAC signing method", fmt.Sprintf("%v", t.Header["alg"]))
			}
			return []byte(secret), nil
		})
		if perr != nil || !token.Valid {
			return value.Value{}, errs.NewTypeError("valid JWT", "invalid or expired token")
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return value.Value{}, errs.NewTypeError("valid JWT", "unrecognized claims encoding")
		}
		return assocListFromClaims(claims, in), nil
	}
}

// claimsFromAssocList converts a (key value) pair List into
// jwt.MapClaims. Each key must be a String or Symbol; each value must
// be a Boolean, Integer, Float or String (the JSON-representable
// subset of Value's kinds).
func claimsFromAssocList(list value.List, in *interner.Interner) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	for _, pair := range list.Items() {
		pl, ok := pair.AsList()
		if !ok || pl.Len() != 2 {
			return nil, errs.NewTypeError("(key value) pair", pair.Kind().String())
		}
		items := pl.Items()
		key, err := claimKeyString(items[0], in)
		if err != nil {
			return nil, err
		}
		claimValue, err := claimValueFromValue(items[1])
		if err != nil {
			return nil, err
		}
		claims[key] = claimValue
	}
	return claims, nil
}

// assocListFromClaims is the inverse of claimsFromAssocList, producing
// a deterministically key-sorted (key value) pair List so round trips
// are stable across the unordered jwt.MapClaims map.
func assocListFromClaims(claims jwt.MapClaims, in *interner.Interner) value.Value {
	keys := make([]string, 0, len(claims))
	for k := range claims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]value.Value, len(keys))
	for i, k := range keys {
		v, err := claimValueToValue(claims[k])
		if err != nil {
			v = value.FromString(fmt.Sprintf("%v", claims[k]))
		}
		pairs[i] = value.FromList(value.FromSlice([]value.Value{
			value.FromSymbol(in.Intern(k)), v,
		}))
	}
	return value.FromList(value.FromSlice(pairs))
}

func claimKeyString(v value.Value, in *interner.Interner) (string, error) {
	switch v.Kind() {
	case value.Symbol:
		sym, _ := v.AsSymbol()
		return in.MustResolve(sym), nil
	case value.String:
		s, _ := v.AsString()
		return s, nil
	default:
		return "", errs.NewTypeError("Symbol or String", v.Kind().String())
	}
}

func claimValueFromValue(v value.Value) (interface{}, error) {
	switch v.Kind() {
	case value.Boolean:
		b, _ := v.AsBoolean()
		return b, nil
	case value.Integer:
		i, _ := v.AsInteger()
		return i, nil
	case value.Float:
		f, _ := v.AsFloat()
		return f, nil
	case value.String:
		s, _ := v.AsString()
		return s, nil
	default:
		return nil, errs.NewTypeError("Boolean, Integer, Float or String", v.Kind().String())
	}
}

// claimValueToValue converts a decoded claim back into a Value.
// encoding/json (which jwt/v5 decodes through) always represents JSON
// numbers as float64; a whole-valued float decodes back to Integer so
// (jwt-verify (jwt-sign claims secret) secret) round-trips Integer
// claims exactly.
func claimValueToValue(v interface{}) (value.Value, error) {
	switch t := v.(type) {
	case bool:
		return value.FromBoolean(t), nil
	case string:
		return value.FromString(t), nil
	case float64:
		if t == math.Trunc(t) {
			return value.FromInteger(int64(t)), nil
		}
		return value.FromFloat(t), nil
	default:
		return value.Value{}, errs.NewTypeError("Boolean, Integer, Float or String claim", fmt.Sprintf("%T", v))
	}
}

func stringArg(v value.Value) (string, error) {
	s, ok := v.AsString()
	if !ok {
		return "", errs.NewTypeError("String", v.Kind().String())
	}
	return s, nil
}
