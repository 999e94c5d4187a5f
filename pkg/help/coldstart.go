package help

const ColdstartYAML = `# wordcalc Quick Start

inputs:
  text: "Plain text file, or - for stdin (default when no input is given)"
  html: "Local HTML file; headings, paragraphs, list items, quotes and code become one line each"
  url: "Web page; the main article is extracted before analysis"

output_formats:
  text: "Human-readable summary (default)"
  json: "Full report as JSON"
  yaml: "Full report as YAML"

commands:
  stats: |
    wordcalc stats essay.txt
    wordcalc stats --format json --detect-language https://example.com/post
    cat essay.txt | wordcalc stats --selection 120:480

  batch: |
    # Several inputs are loaded concurrently and aggregated into one report
    wordcalc stats --format yaml chapter1.txt chapter2.txt chapter3.txt

  keywords: |
    wordcalc keywords --min-occurrences 2 --exclude-stopwords essay.txt

  transform: |
    wordcalc transform --kind title notes.txt
    wordcalc transform --kind upper --selection 0:12 notes.txt

  replace: |
    wordcalc replace --find "colou?r" --replace "hue" notes.txt
    wordcalc replace --literal --find "a.b" --replace "ab" notes.txt

  grammar: |
    wordcalc grammar check essay.txt
    wordcalc grammar apply --offset 10 --length 7 --value spelling essay.txt
    wordcalc grammar apply-all --skip 42:5 essay.txt

  watch: |
    wordcalc watch draft.md

  serve: |
    wordcalc serve --addr :8080
    curl -s localhost:8080/v1/stats -d '{"text":"Hello world."}'

  history: |
    wordcalc stats --record essay.txt
    wordcalc history list
    wordcalc history show        # latest report
    wordcalc history terms
    wordcalc history prune --older-than 720h

transform_kinds:
  upper: "ALL CAPS"
  lower: "all lowercase"
  title: "First Letter Of Each Word"
  sentence: "First letter of each sentence"
  camel: "camelCaseWithoutSpaces"
  invert: "sWAP cASE OF EVERY LETTER"
  trim-spaces: "Collapse blank runs and blank-line runs"
  remove-line-breaks: "Join lines with single spaces"

metrics:
  words: "Whitespace-separated tokens"
  sentences: "Non-blank fragments between runs of . ! or ?"
  paragraphs: "Non-blank lines"
  readability: "Flesch Reading Ease, N/A when there are no words or sentences"
  reading_time: "200 words per minute"
  speaking_time: "150 words per minute"
  keywords: "Top 10 terms of 4 to 19 characters, density = occurrences / words"

config:
  file: "wordcalc.yaml in the working directory, or --config"
  env: "WORDCALC_* variables, also read from .env"
  precedence: "flags > environment > config file > defaults"

error_behavior:
  - "Invalid --find pattern: invalid_pattern error, text unchanged"
  - "Grammar service down: service_unavailable error; stats, keywords and transforms keep working"
  - "Unknown report ID: not_found error"
`
