package postgresrepo

// Table and column names shared by the repositories.
const (
	tableArtists      = "artists"
	tableRecordLabels = "record_labels"
	tableSongs        = "songs"
	tableReleases     = "releases"
	tableReleaseSongs = "release_songs"
	tableAudioStreams = "audio_streams"
	tablePayments     = "payments"
	tablePaymentItems = "payment_streams"
	tableEventLog     = "event_log"

	colID              = "id"
	colName            = "name"
	colRecordLabelID   = "record_label_id"
	colTitle           = "title"
	colArtistID        = "artist_id"
	colDurationSeconds = "duration_seconds"
	colProposedDate    = "proposed_date"
	colActualDate      = "actual_date"
	colStatus          = "status"
	colReleaseID       = "release_id"
	colSongID          = "song_id"
	colPosition        = "position"
	colRecordedAt      = "recorded_at"
	colMonetized       = "monetized"
	colPaid            = "paid"
	colPaymentID       = "payment_id"
	colStreamID        = "stream_id"
	colAmount          = "amount"
	colPaidAt          = "paid_at"
	colEventType       = "event_type"
	colOccurredAt      = "occurred_at"
	colPayload         = "payload"
)

// Schema is the DDL for all tables the repositories use. Hosts and
// integration tests apply it as-is; production setups typically translate it
// into their migration tooling.
const Schema = `
CREATE TABLE IF NOT EXISTS record_labels (
    id   uuid PRIMARY KEY,
    name text NOT NULL
);

CREATE TABLE IF NOT EXISTS artists (
    id              uuid PRIMARY KEY,
    name            text NOT NULL,
    record_label_id uuid REFERENCES record_labels (id)
);

CREATE TABLE IF NOT EXISTS songs (
    id               uuid PRIMARY KEY,
    title            text NOT NULL,
    artist_id        uuid NOT NULL REFERENCES artists (id),
    duration_seconds integer NOT NULL CHECK (duration_seconds > 0)
);

CREATE TABLE IF NOT EXISTS releases (
    id            uuid PRIMARY KEY,
    artist_id     uuid NOT NULL REFERENCES artists (id),
    proposed_date date,
    actual_date   date,
    status        text NOT NULL
);

CREATE TABLE IF NOT EXISTS release_songs (
    release_id uuid NOT NULL REFERENCES releases (id),
    song_id    uuid NOT NULL REFERENCES songs (id),
    position   integer NOT NULL,
    PRIMARY KEY (release_id, song_id)
);

CREATE TABLE IF NOT EXISTS audio_streams (
    id               uuid PRIMARY KEY,
    song_id          uuid NOT NULL REFERENCES songs (id),
    duration_seconds integer NOT NULL CHECK (duration_seconds > 0),
    recorded_at      timestamp with time zone NOT NULL,
    monetized        boolean NOT NULL,
    paid             boolean NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS payments (
    id        uuid PRIMARY KEY,
    artist_id uuid NOT NULL REFERENCES artists (id),
    amount    numeric(12, 4) NOT NULL CHECK (amount > 0),
    paid_at   timestamp with time zone NOT NULL
);

CREATE TABLE IF NOT EXISTS payment_streams (
    payment_id uuid NOT NULL REFERENCES payments (id),
    stream_id  uuid NOT NULL REFERENCES audio_streams (id),
    PRIMARY KEY (payment_id, stream_id)
);

CREATE TABLE IF NOT EXISTS event_log (
    sequence_number bigint GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    event_type      text NOT NULL,
    occurred_at     timestamp with time zone NOT NULL,
    payload         jsonb NOT NULL
);
`
