// Package teamcity renders TeamCity service messages.
//
// A service message is a single line on the build log:
//
//	##teamcity[testStarted name='suite.state.chrome' flowId='session-1']
//	##teamcity[publishArtifacts 'path/to/file => target/dir']
//
// Attribute values are escaped with TeamCity's "|" escaping so a message
// never spans more than one line.
package teamcity

import (
	"strings"
)

const prefix = "##teamcity["

// Attr is a single key='value' pair of a message.
type Attr struct {
	Key   string
	Value string
}

// Message is a service message ready to be written. A message without
// attributes is rendered in the single value form.
type Message struct {
	Name  string
	Value string
	Attrs []Attr
}

// Record is implemented by every typed service message.
type Record interface {
	ServiceMessage() Message
}

var escaper = strings.NewReplacer(
	"|", "||",
	"'", "|'",
	"\n", "|n",
	"\r", "|r",
	"[", "|[",
	"]", "|]",
	"\u0085", "|x",
	"\u2028", "|l",
	"\u2029", "|p",
)

// Escape applies the service message escaping to a value.
func Escape(value string) string {
	return escaper.Replace(value)
}

func (m Message) String() string {
	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(m.Name)
	if len(m.Attrs) == 0 {
		b.WriteString(" '")
		b.WriteString(Escape(m.Value))
		b.WriteString("'")
	}
	for _, attr := range m.Attrs {
		b.WriteString(" ")
		b.WriteString(attr.Key)
		b.WriteString("='")
		b.WriteString(Escape(attr.Value))
		b.WriteString("'")
	}
	b.WriteString("]")
	return b.String()
}

// attrs collects key/value pairs, dropping optional ones left empty.
type attrs []Attr

func (a attrs) add(key, value string) attrs {
	return append(a, Attr{Key: key, Value: value})
}

func (a attrs) addOptional(key, value string) attrs {
	if value == "" {
		return a
	}
	return a.add(key, value)
}
