// Command otpcli generates and verifies one-time passwords and builds
// otpauth:// enrollment URLs from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/mdp/qrterminal/v3"
	"github.com/urfave/cli/v2"

	"github.com/Coinigy/PureOtp/pkg/otp"
	"github.com/Coinigy/PureOtp/pkg/otpauth"
)

func main() {
	app := &cli.App{
		Name:  "otpcli",
		Usage: "generate and verify RFC 4226/6238 one-time passwords",
		Commands: []*cli.Command{
			secretCommand(),
			generateCommand(),
			verifyCommand(),
			urlCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func secretFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "secret",
		Aliases:  []string{"s"},
		Usage:    "base32-encoded shared secret",
		Required: true,
	}
}

func otpFlags() []cli.Flag {
	return []cli.Flag{
		secretFlag(),
		&cli.StringFlag{
			Name:    "algorithm",
			Aliases: []string{"a"},
			Usage:   "hash algorithm: SHA1, SHA256, or SHA512",
			Value:   "SHA1",
		},
		&cli.UintFlag{
			Name:    "digits",
			Aliases: []string{"d"},
			Usage:   "code width",
			Value:   6,
		},
		&cli.UintFlag{
			Name:    "period",
			Aliases: []string{"p"},
			Usage:   "TOTP time step in seconds",
			Value:   30,
		},
		&cli.Int64Flag{
			Name:    "counter",
			Aliases: []string{"c"},
			Usage:   "HOTP counter; selects counter mode when set",
			Value:   -1,
		},
	}
}

func parseOTPFlags(c *cli.Context) (otp.Key, otp.HashMode, error) {
	mode, err := otp.ParseHashMode(c.String("algorithm"))
	if err != nil {
		return nil, 0, err
	}
	key, err := otp.ParseBase32Key(c.String("secret"))
	if err != nil {
		return nil, 0, err
	}
	return key, mode, nil
}

func secretCommand() *cli.Command {
	return &cli.Command{
		Name:  "secret",
		Usage: "generate a random secret of the recommended length",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "algorithm",
				Aliases: []string{"a"},
				Usage:   "hash algorithm the secret is intended for",
				Value:   "SHA1",
			},
		},
		Action: func(c *cli.Context) error {
			mode, err := otp.ParseHashMode(c.String("algorithm"))
			if err != nil {
				return err
			}
			key, err := otp.RandomKeyForMode(mode)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.App.Writer, key.Base32())
			return nil
		},
	}
}

func generateCommand() *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "compute the current TOTP code, or an HOTP code with --counter",
		Flags: otpFlags(),
		Action: func(c *cli.Context) error {
			key, mode, err := parseOTPFlags(c)
			if err != nil {
				return err
			}

			if counter := c.Int64("counter"); counter >= 0 {
				h, err := otp.NewHOTP(key, mode)
				if err != nil {
					return err
				}
				fmt.Fprintln(c.App.Writer, h.Compute(counter))
				return nil
			}

			totp, err := otp.NewTOTP(key, otp.TOTPConfig{
				Mode:   mode,
				Step:   c.Uint("period"),
				Digits: c.Uint("digits"),
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "%s (valid for %ds)\n", totp.Compute(), totp.RemainingSeconds())
			return nil
		},
	}
}

func verifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "verify a code; the exit status reports the result",
		Flags: append(otpFlags(),
			&cli.StringFlag{
				Name:     "code",
				Usage:    "candidate code to verify",
				Required: true,
			},
			&cli.UintFlag{
				Name:  "previous",
				Usage: "extra earlier steps to accept",
				Value: 1,
			},
			&cli.UintFlag{
				Name:  "future",
				Usage: "extra later steps to accept",
				Value: 1,
			},
		),
		Action: func(c *cli.Context) error {
			key, mode, err := parseOTPFlags(c)
			if err != nil {
				return err
			}
			window := otp.Window{Previous: c.Uint("previous"), Future: c.Uint("future")}
			code := c.String("code")

			if counter := c.Int64("counter"); counter >= 0 {
				h, err := otp.NewHOTP(key, mode)
				if err != nil {
					return err
				}
				matched, ok := h.Verify(code, counter, window)
				if !ok {
					return cli.Exit("code rejected", 1)
				}
				fmt.Fprintf(c.App.Writer, "code accepted at counter %d\n", matched)
				return nil
			}

			totp, err := otp.NewTOTP(key, otp.TOTPConfig{
				Mode:   mode,
				Step:   c.Uint("period"),
				Digits: c.Uint("digits"),
			})
			if err != nil {
				return err
			}
			matched, ok := totp.Verify(code, window)
			if !ok {
				return cli.Exit("code rejected", 1)
			}
			fmt.Fprintf(c.App.Writer, "code accepted at step %d\n", matched)
			return nil
		},
	}
}

func urlCommand() *cli.Command {
	return &cli.Command{
		Name:  "url",
		Usage: "build an otpauth:// enrollment URL",
		Flags: append(otpFlags(),
			&cli.StringFlag{
				Name:     "label",
				Aliases:  []string{"l"},
				Usage:    "account label, conventionally Issuer:account",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "qr",
				Usage: "render the URL as a QR code in the terminal",
			},
		),
		Action: func(c *cli.Context) error {
			key, mode, err := parseOTPFlags(c)
			if err != nil {
				return err
			}

			var u *otpauth.URL
			if counter := c.Int64("counter"); counter >= 0 {
				u = otpauth.ForHOTP(c.String("label"), key, uint64(counter))
			} else {
				u = otpauth.ForTOTP(c.String("label"), key, otp.TOTPConfig{
					Mode:   mode,
					Step:   c.Uint("period"),
					Digits: c.Uint("digits"),
				})
			}

			fmt.Fprintln(c.App.Writer, u.String())
			if c.Bool("qr") {
				qrterminal.Generate(u.String(), qrterminal.L, c.App.Writer)
			}
			return nil
		},
	}
}
