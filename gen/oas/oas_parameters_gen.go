// Code generated by ogen, DO NOT EDIT.

package oas

import (
	"net/http"
	"net/url"

	"github.com/go-faster/errors"
	"github.com/ogen-go/ogen/conv"
	"github.com/ogen-go/ogen/middleware"
	"github.com/ogen-go/ogen/ogenerrors"
	"github.com/ogen-go/ogen/uri"
	"github.com/ogen-go/ogen/validate"
)

// FavoriteSandwichParams is parameters of favoriteSandwich operation.
type FavoriteSandwichParams struct {
	// Warehouse customer key, passed back to the warehouse as text.
	CustomerKey string
}

func unpackFavoriteSandwichParams(packed middleware.Parameters) (params FavoriteSandwichParams) {
	{
		key := middleware.ParameterKey{
			Name: "customer_key",
			In:   "path",
		}
		params.CustomerKey = packed[key].(string)
	}
	return params
}

func decodeFavoriteSandwichParams(args [1]string, argsEscaped bool, r *http.Request) (params FavoriteSandwichParams, _ error) {
	// Decode path: customer_key.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "customer_key",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToString(val)
				if err != nil {
					return err
				}

				params.CustomerKey = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "customer_key",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// SandwichDetailsParams is parameters of sandwichDetails operation.
type SandwichDetailsParams struct {
	UserID int64
}

func unpackSandwichDetailsParams(packed middleware.Parameters) (params SandwichDetailsParams) {
	{
		key := middleware.ParameterKey{
			Name: "user_id",
			In:   "path",
		}
		params.UserID = packed[key].(int64)
	}
	return params
}

func decodeSandwichDetailsParams(args [1]string, argsEscaped bool, r *http.Request) (params SandwichDetailsParams, _ error) {
	// Decode path: user_id.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "user_id",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToInt64(val)
				if err != nil {
					return err
				}

				params.UserID = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "user_id",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}

// SandwichReportParams is parameters of sandwichReport operation.
type SandwichReportParams struct {
	// Warehouse customer key, passed back to the warehouse as text.
	CustomerKey string
}

func unpackSandwichReportParams(packed middleware.Parameters) (params SandwichReportParams) {
	{
		key := middleware.ParameterKey{
			Name: "customer_key",
			In:   "path",
		}
		params.CustomerKey = packed[key].(string)
	}
	return params
}

func decodeSandwichReportParams(args [1]string, argsEscaped bool, r *http.Request) (params SandwichReportParams, _ error) {
	// Decode path: customer_key.
	if err := func() error {
		param := args[0]
		if argsEscaped {
			unescaped, err := url.PathUnescape(args[0])
			if err != nil {
				return errors.Wrap(err, "unescape path")
			}
			param = unescaped
		}
		if len(param) > 0 {
			d := uri.NewPathDecoder(uri.PathDecoderConfig{
				Param:   "customer_key",
				Value:   param,
				Style:   uri.PathStyleSimple,
				Explode: false,
			})

			if err := func() error {
				val, err := d.DecodeValue()
				if err != nil {
					return err
				}

				c, err := conv.ToString(val)
				if err != nil {
					return err
				}

				params.CustomerKey = c
				return nil
			}(); err != nil {
				return err
			}
		} else {
			return validate.ErrFieldRequired
		}
		return nil
	}(); err != nil {
		return params, &ogenerrors.DecodeParamError{
			Name: "customer_key",
			In:   "path",
			Err:  err,
		}
	}
	return params, nil
}
