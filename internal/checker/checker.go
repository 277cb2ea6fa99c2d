// SPDX-License-Identifier: MPL-2.0

package checker

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/fopconsole/fop/internal/naming"
)

const (
	// MsgDomainEmpty is reported when the class name has no domain segment.
	// The service-name rule reports it too.
	MsgDomainEmpty = "Domain can't be empty."
	// MsgActionEmpty is reported when the class name has no action segment.
	MsgActionEmpty = "Action can't be empty."
)

var (
	fqcnPattern    = regexp.MustCompile(`^FOP\\Console\\Commands\\(?P<domain>[[:alpha:]]*)\\(?P<action>[[:alpha:]]*)$`)
	commandPattern = regexp.MustCompile(`^fop:(?P<domain>[[:alpha:]]*):(?P<action>[[:alpha:]:-]*)$`)
	actionSplitter = regexp.MustCompile(`[:-]`)
)

type (
	// classParts are the domain and action parsed from a qualified class name.
	classParts struct {
		domain string
		action string
	}

	// commandParts are the domain and action parsed from a command name.
	commandParts struct {
		domain string
		action string
	}
)

// Validate checks qualifiedName, commandName and serviceName against each other.
// All rules run; when none fails the result holds a single passing entry with
// SuccessMessage.
func Validate(qualifiedName, commandName, serviceName string) Results {
	var results Results
	class := parseClass(qualifiedName)

	if class.domain == "" {
		results.fail(MsgDomainEmpty)
	}
	if class.action == "" {
		results.fail(MsgActionEmpty)
	}
	if class.domain == "" || domainPrefix(class) == "" {
		results.fail(fmt.Sprintf("Domain '%s' must be included in command class name.", class.domain))
	}
	checkCommandName(&results, class, parseCommand(commandName))
	checkServiceName(&results, class, serviceName)

	if results.Len() == 0 {
		results.Add(Result{Passed: true, Message: SuccessMessage})
	}
	return results
}

func parseClass(qualifiedName string) classParts {
	m := fqcnPattern.FindStringSubmatch(qualifiedName)
	if m == nil {
		return classParts{}
	}
	return classParts{
		domain: m[fqcnPattern.SubexpIndex("domain")],
		action: m[fqcnPattern.SubexpIndex("action")],
	}
}

func parseCommand(commandName string) commandParts {
	m := commandPattern.FindStringSubmatch(commandName)
	if m == nil {
		return commandParts{}
	}
	return commandParts{
		domain: m[commandPattern.SubexpIndex("domain")],
		action: m[commandPattern.SubexpIndex("action")],
	}
}

// domainPrefix returns the form of the domain the action starts with: the
// domain itself or its singular ("Modules" → "Module"). It returns "" when the
// action starts with neither.
func domainPrefix(class classParts) string {
	if class.domain == "" {
		return ""
	}
	if strings.HasPrefix(class.action, class.domain) {
		return class.domain
	}
	if singular := inflection.Singular(class.domain); singular != "" && strings.HasPrefix(class.action, singular) {
		return singular
	}
	return ""
}

// actionWords returns the words of the action with the domain prefix removed.
func (c classParts) actionWords() []string {
	return naming.Split(strings.TrimPrefix(c.action, domainPrefix(c)))
}

// checkCommandName compares "Domain:Word:Word" rebuilt from the class name with
// the same form rebuilt from the command name.
func checkCommandName(results *Results, class classParts, command commandParts) {
	expected := strings.Join(append([]string{class.domain}, class.actionWords()...), ":")

	pieces := []string{naming.Capitalize(command.domain)}
	for _, piece := range actionSplitter.Split(command.action, -1) {
		pieces = append(pieces, naming.Capitalize(piece))
	}
	actual := strings.Join(pieces, ":")

	if expected != actual {
		results.fail(fmt.Sprintf("Command name doesn't match class name: expected '%s', got '%s'.", expected, actual))
	}
}

// checkServiceName matches serviceName against
// fop.console.<domain_words>.<action words joined by "." or "_">.command.
// Both segments are the snake-case rendering of their words; the action
// separators are then relaxed to accept dots.
func checkServiceName(results *Results, class classParts, serviceName string) {
	domain := regexp.QuoteMeta(naming.RenderString(naming.Snake, class.domain))
	action := strings.ReplaceAll(regexp.QuoteMeta(naming.RenderString(naming.Snake, class.action)), "_", "[._]")

	pattern := `(?i)^fop\.console\.` + domain + `\.` + action + `\.command$`
	re, err := regexp.Compile(pattern)
	if err != nil || !re.MatchString(serviceName) {
		results.fail(MsgDomainEmpty)
	}
}
