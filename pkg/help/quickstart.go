package help

const QuickstartYAML = `# notia Quick Start

input:
  json: '[{"id": "1", "content": "Fix login bug", "project": "web"}]'
  yaml: |
    - id: "1"
      content: "Fix login bug"
      project: web
      tags: [bug]
  rules:
    - "Top level must be an array (JSON) or sequence (YAML)"
    - "Every note needs id, content and project; missing or null fails the whole batch"
    - "Stdin: --input -"

commands:
  summary: |
    notia analyze --input notes.json

  legacy_summary: |
    notia analyze --input notes.json --legacy
    # Total notes: 2, Total words: 8, Unique projects: 1

  keywords: |
    notia keywords --input notes.json --top 5

  legacy_keywords: |
    notia keywords --input notes.json --top 5 --legacy
    # {"chat": 2, "souris": 1}

  cached_keywords: |
    notia keywords --input notes.json --cache-dir .notia-cache --max-age 1h

  report: |
    notia report --input notes.yaml --output results/report.json

store_commands:
  add: 'notia notes add --project web --tags bug,frontend "Fix login bug"'
  import: 'notia notes import --input notes.json'
  list: 'notia notes list --project web'
  show: 'notia notes show <id>'
  delete: 'notia notes delete <id> [<id>...]'
  search: 'notia notes search "login bug" --limit 5'
  export: 'notia notes export --output-format yaml --output notes.yaml'
  analyses: 'notia notes analyses'
  analyze_store: 'notia keywords --from-db --project web --record'

keyword_rules:
  - "Text is lowercased (Unicode aware)"
  - "French elisions are removed: l'arbre -> arbre, qu'il -> il"
  - "Anything other than Latin letters, accented Latin letters and whitespace is dropped"
  - "English and French stop words are removed"
  - "Single-letter tokens are removed"
  - "Ranking: count descending, then token ascending"

config_file:
  path: "notia.yaml (or --config / NOTIA_CONFIG)"
  keys: [top_n, workers, db_path, cache_dir, cache_ttl, strip_html, detect_language, format]
  precedence: "flags > config file > defaults"

error_behavior:
  - "Malformed batches: nothing is analyzed, error JSON on stderr"
  - "Negative --top is rejected; --top 0 returns an empty list"
  - "Exit codes: 0=success, 1=error"
`
