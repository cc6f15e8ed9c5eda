package config

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v3"
)

type parseOptions struct {
	EnvPrefix     string
	EnvIsDisabled bool
	FlagPrefix    string
	Category      string
}

var (
	tagNameEnv        = "env"        // полностью меняет часть после префикса для env. env:"-" - убрать ввод значения через env.
	tagNameEnvPrefix  = "envprefix"  // полностью перезаписывает префикс env (envprefix:"APP2", envprefix:"")
	tagNameFlag       = "flag"       // полностью меняет часть после префикса для флага. flag:"-" - убрать ввод значения через флаг
	tagNameFlagPrefix = "flagprefix" // полностью перезаписывает префикс флага
	tagNameCLI        = "cli"        // опции через запятую: hidden,required. cli:"-" - игнор поля.
	tagNameUsage      = "usage"      // описание (usage:"делает что-то")
	tagNameCategory   = "category"   // категория в команде help
)

var durationType = reflect.TypeOf(time.Duration(0))

// Flags строит флаги urfave/cli по тегам структуры.
// Текущие значения cfg становятся значениями по умолчанию, флаги пишут прямо в поля cfg.
//
// Пример:
//
//	cfg, _ := config.Load(config.Path())
//	flags, err := config.Flags(&cfg)
func Flags(cfg any) ([]cli.Flag, error) {
	return parseFlags(cfg, parseOptions{})
}

func parseFlags(c any, opts parseOptions) ([]cli.Flag, error) {
	if c == nil {
		return nil, errors.New("config must not be nil")
	}

	v := reflect.ValueOf(c)

	if v.Kind() != reflect.Ptr {
		return nil, errors.New("config must be pointer")
	}

	v = v.Elem()

	if v.Kind() != reflect.Struct {
		return nil, errors.New("config must be struct")
	}

	t := v.Type()

	flags := make([]cli.Flag, 0, v.NumField())

	for i := range v.NumField() {
		res, err := parseField(t.Field(i), v.Field(i), opts)
		if err != nil {
			return nil, err
		}

		flags = append(flags, res...)
	}

	return flags, nil
}

type flagOptions[T any] struct {
	Dest *T
	flagOptionsCommon
}

type flagOptionsCommon struct {
	Name       string
	Category   string
	Env        string
	DisableEnv bool
	Usage      string
	Required   bool
	Hidden     bool
}

// nolint: gocyclo, cyclop
func parseField(
	t reflect.StructField,
	v reflect.Value,
	opts parseOptions,
) ([]cli.Flag, error) {
	var flagPrefix, envPrefix string

	if v, ok := t.Tag.Lookup(tagNameFlagPrefix); ok {
		opts.FlagPrefix = v
	}

	if v, ok := t.Tag.Lookup(tagNameEnvPrefix); ok {
		opts.EnvPrefix = v
	}

	if opts.FlagPrefix != "" {
		flagPrefix = opts.FlagPrefix + "-"
	}

	if opts.EnvPrefix != "" {
		envPrefix = opts.EnvPrefix + "_"
	}

	cliOptionsStr, _ := t.Tag.Lookup(tagNameCLI)
	if cliOptionsStr == "-" {
		return nil, nil
	}

	cliOptions := strings.Split(cliOptionsStr, ",")
	cliRequired := slices.Contains(cliOptions, "required")
	cliHidden := slices.Contains(cliOptions, "hidden")

	if cliHidden && cliRequired {
		return nil, fmt.Errorf("flag %v: must not be hidden and required at the same time", t.Name)
	}

	category, ok := t.Tag.Lookup(tagNameCategory)
	switch {
	case ok && v.Kind() != reflect.Struct:
		return nil, fmt.Errorf("category tag is allowed only for structures")
	case !ok && v.Kind() == reflect.Struct:
		category = t.Name
	case !ok && v.Kind() != reflect.Struct:
		category = opts.Category
	}

	if !v.CanSet() {
		return nil, fmt.Errorf("private field: %s", t.Name)
	}

	if v.Kind() == reflect.Struct {
		envPrefixFromTag, hasEnvPrefixFromTag := t.Tag.Lookup(tagNameEnv)
		if hasEnvPrefixFromTag {
			envPrefix += envPrefixFromTag
		} else {
			envPrefix += toScreamingSnakeCase(t.Name)
		}

		flagPrefixFromTag, hasFlagPrefixFromTag := t.Tag.Lookup(tagNameFlag)
		if hasFlagPrefixFromTag {
			flagPrefix += flagPrefixFromTag
		} else {
			flagPrefix += toKebabCase(t.Name)
		}

		return parseFlags(v.Addr().Interface(), parseOptions{
			Category:      category,
			EnvPrefix:     strings.TrimSuffix(envPrefix, "_"),
			EnvIsDisabled: opts.EnvIsDisabled || envPrefixFromTag == "-",
			FlagPrefix:    strings.TrimSuffix(flagPrefix, "-"),
		})
	}

	argName, ok := t.Tag.Lookup(tagNameFlag)
	switch {
	case !ok:
		argName = flagPrefix + toKebabCase(t.Name)
	case argName == "-":
		return nil, nil
	default:
		argName = flagPrefix + argName
	}

	disableEnv := opts.EnvIsDisabled

	var envName string

	if !disableEnv {
		envName, ok = t.Tag.Lookup(tagNameEnv)
		switch {
		case !ok:
			envName = envPrefix + toScreamingSnakeCase(t.Name)
		case envName == "-":
			disableEnv = true
		default:
			envName = envPrefix + envName
		}
	}

	usage, _ := t.Tag.Lookup(tagNameUsage)

	foc := flagOptionsCommon{
		Name:       argName,
		Category:   category,
		Env:        envName,
		DisableEnv: disableEnv,
		Usage:      usage,
		Required:   cliRequired,
		Hidden:     cliHidden,
	}

	addr := v.Addr()

	// Duration проверяется по типу до Kind: у него тот же Kind, что у int64
	if v.Type() == durationType || v.Type() == reflect.TypeOf(Duration(0)) {
		dst, ok := addr.Convert(reflect.PointerTo(durationType)).Interface().(*time.Duration)
		if !ok {
			return nil, fmt.Errorf("failed to cast *time.Duration: %s", t.Name)
		}

		return []cli.Flag{durationFlag(flagOptions[time.Duration]{flagOptionsCommon: foc, Dest: dst})}, nil
	}

	// для корректной работы в случаях, когда T1 в конфиге объявлен как "type T1 T2", делается конвертация в T2 для правильной работы каста
	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return nil, fmt.Errorf("slice type %v is unsupported", v.Type().Elem())
		}

		dst, ok := addr.Convert(reflect.TypeOf(&[]string{})).Interface().(*[]string)
		if !ok {
			return nil, fmt.Errorf("failed to cast *[]string: %s", t.Name)
		}

		return []cli.Flag{stringSliceFlag(flagOptions[[]string]{flagOptionsCommon: foc, Dest: dst})}, nil

	case reflect.String:
		var str string

		dst, ok := addr.Convert(reflect.TypeOf(&str)).Interface().(*string)
		if !ok {
			return nil, fmt.Errorf("failed to cast *string: %s", t.Name)
		}

		return []cli.Flag{stringFlag(flagOptions[string]{flagOptionsCommon: foc, Dest: dst})}, nil

	case reflect.Int:
		var tInt int

		dst, ok := addr.Convert(reflect.TypeOf(&tInt)).Interface().(*int)
		if !ok {
			return nil, fmt.Errorf("failed to cast *int: %s", t.Name)
		}

		return []cli.Flag{intFlag(flagOptions[int]{flagOptionsCommon: foc, Dest: dst})}, nil

	case reflect.Int64:
		var tInt64 int64

		dst, ok := addr.Convert(reflect.TypeOf(&tInt64)).Interface().(*int64)
		if !ok {
			return nil, fmt.Errorf("failed to cast *int64: %s", t.Name)
		}

		return []cli.Flag{int64Flag(flagOptions[int64]{flagOptionsCommon: foc, Dest: dst})}, nil

	case reflect.Bool:
		var tBool bool

		dst, ok := addr.Convert(reflect.TypeOf(&tBool)).Interface().(*bool)
		if !ok {
			return nil, fmt.Errorf("failed to cast *bool: %s", t.Name)
		}

		return []cli.Flag{boolFlag(flagOptions[bool]{flagOptionsCommon: foc, Dest: dst})}, nil

	default:
		return nil, fmt.Errorf("type %v is unsupported", v.Type())
	}
}

func stringFlag(opts flagOptions[string]) *cli.StringFlag {
	flag := &cli.StringFlag{Name: opts.Name, Category: opts.Category, Value: *opts.Dest, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func stringSliceFlag(opts flagOptions[[]string]) *cli.StringSliceFlag {
	flag := &cli.StringSliceFlag{Name: opts.Name, Category: opts.Category, Value: *opts.Dest, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func boolFlag(opts flagOptions[bool]) *cli.BoolFlag {
	flag := &cli.BoolFlag{Name: opts.Name, Category: opts.Category, Value: *opts.Dest, Destination: opts.Dest, Usage: opts.Usage, Hidden: opts.Hidden}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func intFlag(opts flagOptions[int]) *cli.IntFlag {
	flag := &cli.IntFlag{Name: opts.Name, Category: opts.Category, Value: *opts.Dest, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func int64Flag(opts flagOptions[int64]) *cli.Int64Flag {
	flag := &cli.Int64Flag{Name: opts.Name, Category: opts.Category, Value: *opts.Dest, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

func durationFlag(opts flagOptions[time.Duration]) *cli.DurationFlag {
	flag := &cli.DurationFlag{Name: opts.Name, Category: opts.Category, Value: *opts.Dest, Destination: opts.Dest, Usage: opts.Usage, Required: opts.Required, Hidden: opts.Hidden}

	if !opts.DisableEnv {
		flag.Sources = cli.EnvVars(opts.Env)
	}

	return flag
}

var (
	matchFirstCap = regexp.MustCompile("(.)([A-Z][a-z]+)")
	matchAllCap   = regexp.MustCompile("([a-z0-9])([A-Z])")
)

func toSnakeCase(str string) string {
	snake := matchFirstCap.ReplaceAllString(str, "${1}_${2}")
	snake = matchAllCap.ReplaceAllString(snake, "${1}_${2}")

	return strings.ToLower(snake)
}

func toKebabCase(str string) string {
	return strings.ReplaceAll(toSnakeCase(str), "_", "-")
}

func toScreamingSnakeCase(str string) string {
	return strings.ToUpper(toSnakeCase(str))
}
