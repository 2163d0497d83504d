package config

// defaultDocument is written to ~/.chromatermrc on first run. Patterns
// that need surrounding context to bound a match capture the payload in
// group 2 and color that group instead of the whole match, so the context
// characters keep their normal rendition.
const defaultDocument = `# ChromaTerm rules. Each rule pairs a regex with either one color name for
# the whole match or a map from capture group index to color name.
rules:
- description: IPv4
  regex: '(^|[^\d.])((?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)(?:/\d+)?)($|[^\d.])'
  color:
    2: green

- description: IPv6
  regex: '(?i)(^|[^\w:.])((?:(?:[\da-f]{1,4}:){7}[\da-f]{1,4}|(?:[\da-f]{1,4}:){1,7}:|(?:[\da-f]{1,4}:){1,6}:[\da-f]{1,4}|(?:[\da-f]{1,4}:){1,5}(?::[\da-f]{1,4}){1,2}|(?:[\da-f]{1,4}:){1,4}(?::[\da-f]{1,4}){1,3}|(?:[\da-f]{1,4}:){1,3}(?::[\da-f]{1,4}){1,4}|(?:[\da-f]{1,4}:){1,2}(?::[\da-f]{1,4}){1,5}|[\da-f]{1,4}:(?::[\da-f]{1,4}){1,6}|:(?:(?::[\da-f]{1,4}){1,7}|:)|::(?:ffff(?::0{1,4})?:)?(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?)|(?:[\da-f]{1,4}:){1,4}:(?:(?:25[0-5]|2[0-4]\d|[01]?\d\d?)\.){3}(?:25[0-5]|2[0-4]\d|[01]?\d\d?))(?:%\w+)?(?:/\d+)?)($|[^\w:.])'
  color:
    2: cyan

- description: MAC
  regex: '(?i)(^|[^\w:.])([\da-f]{2}(?::[\da-f]{2}){5}|[\da-f]{4}(?:\.[\da-f]{4}){2})($|[^\w:.])'
  color:
    2: magenta

- description: Date
  regex: '(?i)\b((?:\d{4}|\d{2})-(?:0?[1-9]|1[0-2])-(?:3[01]|[12]\d|0?[1-9])|(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s(?:\d{4}|3[01]|[12]\d|0?[1-9])|(?:3[01]|[12]\d|0?[1-9])\s(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec))\b'
  color: yellow

- description: Time
  regex: '(^|[^:\w])((?:[01]\d|2[0-3])(?::[0-5]\d){1,2}(?:\.\d+)?)($|[^:\w])'
  color:
    2: bright_yellow

- description: BGP - Transitional states
  regex: '\b(Idle|Connect|Active|OpenSent|OpenConfirm)\b'
  color: red

- description: Generic - Good
  regex: '(?i)\b(ok(?:ay)?|pass(?:ed|es)?|permit(?:ted|s)?|succe(?:ss(?:ful(?:ly)?)?|ed(?:ed)?s?)|up)\b'
  color: green

- description: Generic - Bad
  regex: '(?i)\b(err(?:ors?)?|fail(?:ed|ure|s)?|den(?:y|ied|ies)|drop(?:ped|s)?|reject(?:ed|s)?|down)\b'
  color: red
`
