package sqlinline

// Token statements take the quoted table name as their only format verb.

const QSelectClientToken = `--sql 3c0f5b8e-6f0a-4c59-9a6e-1b7d2e4f8a21
select token
from %s
where name = $1::text
limit 1;
`

const QUpsertClientToken = `--sql 9e2d4a71-5b3c-4f8e-8d16-7a0c9b2e5f34
insert into %s (name, token, updated_at)
values ($1::text, $2::text, now())
on conflict (name) do update set
    token = excluded.token,
    updated_at = now();
`

const QDeleteClientToken = `--sql 5a7c1e93-2d4b-4e6f-b8a0-c3f1d9e7b052
delete from %s
where name = $1::text;
`
