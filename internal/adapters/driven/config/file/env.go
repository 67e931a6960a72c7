package file

// SiteEnv maps config keys to the environment variables that override them,
// in order of precedence. The VITE_ names are kept so existing deployment
// environments keep working.
//
//nolint:gosec // G101: These are variable names, not credentials.
var SiteEnv = map[string][]string{
	"airtable.api_url": {"AIRTABLE_API_URL"},
	"airtable.base_id": {"AIRTABLE_BASE_ID", "VITE_AT_BASE_ID", "VITE_AIRTABLE_BASE_ID", "VITE_AT_BASE"},
	"airtable.api_key": {"AIRTABLE_API_KEY", "VITE_AT_API_KEY", "VITE_AIRTABLE_API_KEY", "VITE_AT_KEY"},

	"tables.videos":              {"VITE_AT_VIDEOS_TABLE"},
	"tables.speakers":            {"VITE_AIRTABLE_TABLE_SPEAKERS"},
	"tables.speaker_lookup":      {"VITE_AT_SPEAKERS_TABLE", "VITE_AIRTABLE_SPEAKER_TABLE"},
	"tables.consultants_landing": {"ASB_CONSULTANTS_LANDING_TABLE_ID", "VITE_ASB_CONSULTANTS_LANDING_TABLE_ID"},
	"tables.consultants":         {"ASB_CONSULTANTS_TABLE_ID", "VITE_ASB_CONSULTANTS_TABLE_ID"},

	"whatsapp.phone":     {"WA_PHONE", "VITE_WA_PHONE"},
	"server.listen_addr": {"LISTEN_ADDR"},
	"server.drafts_db":   {"ASB_DRAFTS_DB"},
	"cache.lookup_ttl":   {"ASB_LOOKUP_CACHE_TTL"},
}
